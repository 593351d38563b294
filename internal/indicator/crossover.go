package indicator

import "fmt"

// Crossover feeds one price stream into a short and a long moving average
// and signals Buy while the short side is at or above the long side, Sell
// while it is below (optionally inverted).
//
// Fresh is an edge trigger, not a level: it is true only on the update
// where the signal differs from the immediately preceding update's
// signal. The previous signal starts at Hold, so the first update is
// fresh unless its signal somehow matches Hold.
type Crossover struct {
	short  MovingAverage
	long   MovingAverage
	invert bool
	signal Signal
	fresh  bool
}

// NewCrossover creates a crossover classifier over two pre-built moving
// averages of any variant.
func NewCrossover(short, long MovingAverage, invert bool) (*Crossover, error) {
	if short == nil || long == nil {
		return nil, fmt.Errorf("%w: crossover requires both moving averages", ErrInvalidConfig)
	}
	return &Crossover{
		short:  short,
		long:   long,
		invert: invert,
		signal: Hold,
	}, nil
}

// NewSMACrossover creates a crossover classifier over two simple moving
// averages built from the given periods.
func NewSMACrossover(shortPeriod, longPeriod int, invert bool) (*Crossover, error) {
	short, err := NewSMA(shortPeriod)
	if err != nil {
		return nil, err
	}
	long, err := NewSMA(longPeriod)
	if err != nil {
		return nil, err
	}
	return NewCrossover(short, long, invert)
}

// Update feeds the next price into both sides and reclassifies.
func (c *Crossover) Update(value float64) error {
	if err := checkInput(value); err != nil {
		return err
	}
	c.fresh = false

	c.short.Update(value)
	c.long.Update(value)

	signal := Buy
	if c.short.Average() < c.long.Average() {
		signal = Sell
	}
	if c.invert {
		signal = signal.Invert()
	}

	if signal != c.signal {
		c.signal = signal
		c.fresh = true
	}
	return nil
}

// Signal returns the classification from the last update.
func (c *Crossover) Signal() Signal { return c.signal }

// Fresh reports whether the last update changed the signal.
func (c *Crossover) Fresh() bool { return c.fresh }

// Accurate reports whether both sides have warmed up.
func (c *Crossover) Accurate() bool { return c.short.Accurate() && c.long.Accurate() }
