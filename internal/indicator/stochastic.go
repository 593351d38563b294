package indicator

import "tradingtools/internal/rolling"

// Stochastic compares the latest close to the price extremes of the
// lookback window:
//
//	%K = (close − lowN) / (highN − lowN) × 100
//
// Each update rescans the window for its extrema, costing O(period).
// A flat window (highN == lowN) is not guarded and yields a
// non-finite %K.
type Stochastic struct {
	lows       *rolling.Queue[float64]
	highs      *rolling.Queue[float64]
	k          float64
	oversold   float64
	overbought float64
}

// NewStochastic creates a stochastic oscillator with explicit period and
// %K thresholds (conventionally 14, 20, 80).
func NewStochastic(period int, oversold, overbought float64) (*Stochastic, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	lows, err := rolling.New[float64](period)
	if err != nil {
		return nil, err
	}
	highs, err := rolling.New[float64](period)
	if err != nil {
		return nil, err
	}
	return &Stochastic{
		lows:       lows,
		highs:      highs,
		oversold:   oversold,
		overbought: overbought,
	}, nil
}

// Update feeds the next bar's close, high and low.
func (s *Stochastic) Update(close, high, low float64) error {
	for _, v := range [...]float64{close, high, low} {
		if err := checkInput(v); err != nil {
			return err
		}
	}

	s.lows.Enqueue(low)
	s.highs.Enqueue(high)

	lowest := windowMin(s.lows)
	highest := windowMax(s.highs)
	s.k = (close - lowest) / (highest - lowest) * 100
	return nil
}

// PercentK returns the current %K value.
func (s *Stochastic) PercentK() float64 { return s.k }

// Accurate reports whether the lookback window has filled.
func (s *Stochastic) Accurate() bool { return s.highs.AtCapacity() }

// State classifies the current %K against the configured thresholds.
func (s *Stochastic) State() OscillatorState {
	switch {
	case s.k >= s.overbought:
		return Overbought
	case s.k <= s.oversold:
		return Oversold
	default:
		return Nothing
	}
}

func windowMin(q *rolling.Queue[float64]) float64 {
	first := true
	min := 0.0
	q.Do(func(v float64) bool {
		if first || v < min {
			min = v
			first = false
		}
		return true
	})
	return min
}

func windowMax(q *rolling.Queue[float64]) float64 {
	first := true
	max := 0.0
	q.Do(func(v float64) bool {
		if first || v > max {
			max = v
			first = false
		}
		return true
	})
	return max
}
