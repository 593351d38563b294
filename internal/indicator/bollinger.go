package indicator

import "tradingtools/internal/stats"

// Bollinger plots bands a configured number of standard deviations above
// and below a moving average of the typical price (high+low+close)/3.
//
// The band width comes from a rolling window deviation once that window
// has filled; until then an unbounded running deviation stands in, so the
// bands are approximate during warm-up.
type Bollinger struct {
	ma         MovingAverage
	window     *stats.Rolling
	fallback   *stats.Running
	deviations float64
	upper      float64
	lower      float64
}

// NewBollinger creates bands over `period` samples with the given
// deviation multiplier (conventionally 2), averaged with an SMA.
func NewBollinger(period int, deviations float64) (*Bollinger, error) {
	ma, err := NewSMA(period)
	if err != nil {
		return nil, err
	}
	return NewBollingerWith(ma, period, deviations)
}

// NewBollingerWith creates bands around a caller-supplied moving average.
func NewBollingerWith(ma MovingAverage, period int, deviations float64) (*Bollinger, error) {
	if ma == nil {
		return nil, ErrInvalidConfig
	}
	window, err := stats.NewRolling(period)
	if err != nil {
		return nil, err
	}
	return &Bollinger{
		ma:         ma,
		window:     window,
		fallback:   stats.NewRunning(),
		deviations: deviations,
	}, nil
}

// Update feeds the next bar's close, high and low.
func (b *Bollinger) Update(close, high, low float64) error {
	for _, v := range [...]float64{close, high, low} {
		if err := checkInput(v); err != nil {
			return err
		}
	}

	tp := (high + low + close) / 3.0

	b.ma.Update(tp)
	b.window.Push(tp)

	var sd float64
	if b.window.Accurate() {
		sd = b.window.Stddev()
	} else {
		b.fallback.Push(tp)
		sd = b.fallback.Stddev()
	}

	b.upper = b.ma.Average() + b.deviations*sd
	b.lower = b.ma.Average() - b.deviations*sd
	return nil
}

// UpperBand returns the current upper band.
func (b *Bollinger) UpperBand() float64 { return b.upper }

// LowerBand returns the current lower band.
func (b *Bollinger) LowerBand() float64 { return b.lower }

// Average returns the middle band.
func (b *Bollinger) Average() float64 { return b.ma.Average() }

// Accurate reports whether the deviation window has filled.
func (b *Bollinger) Accurate() bool { return b.window.Accurate() }
