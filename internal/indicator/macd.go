package indicator

import "fmt"

// MACD is the difference between a short and a long moving average of the
// same price stream, conventionally 12- and 26-sample EMAs.
type MACD struct {
	short MovingAverage
	long  MovingAverage
	macd  float64
}

// NewMACD creates a MACD from two periods, using an EMA for each side.
func NewMACD(short, long int) (*MACD, error) {
	shortMA, err := NewEMA(short)
	if err != nil {
		return nil, err
	}
	longMA, err := NewEMA(long)
	if err != nil {
		return nil, err
	}
	return &MACD{short: shortMA, long: longMA}, nil
}

// NewMACDWith creates a MACD from two pre-built estimators, which may be
// any mix of moving-average variants.
func NewMACDWith(short, long MovingAverage) (*MACD, error) {
	if short == nil || long == nil {
		return nil, fmt.Errorf("%w: macd requires both moving averages", ErrInvalidConfig)
	}
	return &MACD{short: short, long: long}, nil
}

// Update feeds the next price into both sides.
func (m *MACD) Update(value float64) error {
	if err := checkInput(value); err != nil {
		return err
	}
	m.short.Update(value)
	m.long.Update(value)
	m.macd = m.short.Average() - m.long.Average()
	return nil
}

// Value returns short.average − long.average as of the last update.
func (m *MACD) Value() float64 { return m.macd }

// Accurate reports whether the slower side has warmed up.
func (m *MACD) Accurate() bool { return m.short.Accurate() && m.long.Accurate() }
