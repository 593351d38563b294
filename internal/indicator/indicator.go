// Package indicator provides streaming technical indicators over ordered
// price samples. Every estimator consumes one observation per Update call
// and exposes its current value immediately after, without retaining full
// history beyond its configured window.
//
// Windowed estimators report Accurate() == false until they have seen a
// full window of samples; values read before that are well-defined but
// statistically biased. Estimators hold no locks: one instance per
// goroutine, one instance per batch run.
package indicator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by constructors for unusable parameters
// (period < 1, smoothing < 1, nil estimator handles).
var ErrInvalidConfig = errors.New("indicator: invalid configuration")

// ErrInvalidInput is returned by Update for samples that are not finite
// numbers. A failing Update leaves the estimator unchanged.
var ErrInvalidInput = errors.New("indicator: invalid input")

// MovingAverage is the capability shared by the moving-average family.
// Composites (RSI, MACD, Bollinger, Crossover) accept any implementation.
type MovingAverage interface {
	// Update feeds the next sample. Fails with ErrInvalidInput on NaN or
	// ±Inf without mutating state.
	Update(value float64) error

	// Average returns the current average.
	Average() float64

	// Accurate reports whether the estimator has warmed up.
	Accurate() bool
}

// Signal is a 3-valued trade classification. The ordinals line up with
// EnvelopeState so the two convert directly.
type Signal int

const (
	Buy Signal = iota
	Sell
	Hold
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "hold"
	}
}

// Invert swaps buy and sell, leaving hold unchanged.
func (s Signal) Invert() Signal {
	switch s {
	case Buy:
		return Sell
	case Sell:
		return Buy
	default:
		return Hold
	}
}

// OscillatorState classifies an oscillator reading against its configured
// overbought/oversold thresholds.
type OscillatorState int

const (
	Overbought OscillatorState = iota
	Oversold
	Nothing
)

func (o OscillatorState) String() string {
	switch o {
	case Overbought:
		return "overbought"
	case Oversold:
		return "oversold"
	default:
		return "nothing"
	}
}

func checkInput(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, value)
	}
	return nil
}

func checkPeriod(period int) error {
	if period < 1 {
		return fmt.Errorf("%w: period must be greater than 0, got %d", ErrInvalidConfig, period)
	}
	return nil
}
