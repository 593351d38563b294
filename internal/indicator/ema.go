package indicator

import "fmt"

// EMA is an exponential moving average: average += m × (value − average)
// with multiplier m = smoothing/(period+1), seeded by the first sample.
//
// An internal SMA is fed during warm-up purely to decide when the window
// has filled; the moment it reports accurate it is discarded and Accurate
// stays true for the life of the estimator.
type EMA struct {
	period     int
	smoothing  float64
	multiplier float64
	average    float64
	seeded     bool
	warmup     *SMA // nil once warm-up completes
}

// NewEMA creates an exponential moving average over `period` samples with
// the conventional smoothing factor of 2.
func NewEMA(period int) (*EMA, error) {
	return NewEMASmoothing(period, 2.0)
}

// NewEMASmoothing creates an exponential moving average with an explicit
// smoothing factor. Smoothing must be at least 1.
func NewEMASmoothing(period int, smoothing float64) (*EMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if smoothing < 1.0 {
		return nil, fmt.Errorf("%w: smoothing must be at least 1.0, got %v", ErrInvalidConfig, smoothing)
	}
	warmup, err := NewSMA(period)
	if err != nil {
		return nil, err
	}
	return &EMA{
		period:     period,
		smoothing:  smoothing,
		multiplier: smoothing / float64(period+1),
		warmup:     warmup,
	}, nil
}

func (e *EMA) Update(value float64) error {
	if err := checkInput(value); err != nil {
		return err
	}

	if !e.seeded {
		e.average = value
		e.seeded = true
	} else {
		e.average += e.multiplier * (value - e.average)
	}

	if e.warmup != nil {
		e.warmup.Update(value)
		if e.warmup.Accurate() {
			// One-way transition: the flag never reverts.
			e.warmup = nil
		}
	}
	return nil
}

func (e *EMA) Average() float64 { return e.average }

// Accurate flips true once `period` samples have arrived and never
// reverts.
func (e *EMA) Accurate() bool { return e.seeded && e.warmup == nil }

// Period returns the configured period.
func (e *EMA) Period() int { return e.period }

// Smoothing returns the configured smoothing factor.
func (e *EMA) Smoothing() float64 { return e.smoothing }
