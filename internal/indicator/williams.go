package indicator

import "tradingtools/internal/rolling"

// WilliamsR ranks the latest close against the close extremes of the
// lookback window:
//
//	range = (highest − close) / (highest − lowest)
//
// The window is rescanned for extrema on every update. As with the
// stochastic oscillator, a flat window is not guarded: highest == lowest
// yields a non-finite ratio, including on the very first update.
type WilliamsR struct {
	lookback   *rolling.Queue[float64]
	rng        float64
	overbought float64
	oversold   float64
}

// NewWilliamsR creates a Williams %R oscillator with explicit period and
// thresholds (conventionally 14, −20, −80).
func NewWilliamsR(period int, overbought, oversold float64) (*WilliamsR, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	lookback, err := rolling.New[float64](period)
	if err != nil {
		return nil, err
	}
	return &WilliamsR{
		lookback:   lookback,
		overbought: overbought,
		oversold:   oversold,
	}, nil
}

// Update feeds the next close price.
func (w *WilliamsR) Update(value float64) error {
	if err := checkInput(value); err != nil {
		return err
	}

	w.lookback.Enqueue(value)
	highest := windowMax(w.lookback)
	lowest := windowMin(w.lookback)
	w.rng = (highest - value) / (highest - lowest)
	return nil
}

// Range returns the most recently calculated %R value.
func (w *WilliamsR) Range() float64 { return w.rng }

// Accurate reports whether the lookback window has filled.
func (w *WilliamsR) Accurate() bool { return w.lookback.AtCapacity() }

// State classifies the current %R against the configured thresholds.
func (w *WilliamsR) State() OscillatorState {
	switch {
	case w.rng >= w.overbought:
		return Overbought
	case w.rng <= w.oversold:
		return Oversold
	default:
		return Nothing
	}
}
