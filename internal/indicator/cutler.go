package indicator

// CutlerRSI is an RSI variant that keeps simple moving averages for the up
// and down trackers for the life of the stream instead of handing off to
// Wilder smoothing. This sidesteps the data-length dependence of the
// smoothed form: 50 samples of Cutler RSI match the last 50 samples of a
// 500-sample stream exactly.
type CutlerRSI struct {
	up         *SMA
	down       *SMA
	lastPrice  float64
	hasLast    bool
	rs         float64
	rsi        float64
	oversold   float64
	overbought float64
}

// NewCutlerRSI creates a Cutler RSI with explicit period and thresholds.
func NewCutlerRSI(period int, oversold, overbought float64) (*CutlerRSI, error) {
	up, err := NewSMA(period)
	if err != nil {
		return nil, err
	}
	down, err := NewSMA(period)
	if err != nil {
		return nil, err
	}
	return &CutlerRSI{
		up:         up,
		down:       down,
		oversold:   oversold,
		overbought: overbought,
	}, nil
}

// Update feeds the next price.
func (c *CutlerRSI) Update(value float64) error {
	if err := checkInput(value); err != nil {
		return err
	}

	if !c.hasLast {
		c.lastPrice = value
		c.hasLast = true
	}

	up := 0.0
	down := 0.0
	if value > c.lastPrice {
		up = value - c.lastPrice
	} else if value < c.lastPrice {
		down = c.lastPrice - value
	}

	c.up.Update(up)
	c.down.Update(down)

	if c.down.Average() > 0 {
		c.rs = c.up.Average() / c.down.Average()
		c.rsi = 100 - (100 / (1 + c.rs))
	} else {
		c.rsi = 100
	}

	c.lastPrice = value
	return nil
}

// Value returns the current RSI, in the range 0–100.
func (c *CutlerRSI) Value() float64 { return c.rsi }

// Accurate reports whether the up/down windows have filled.
func (c *CutlerRSI) Accurate() bool { return c.up.Accurate() }

// State classifies the current RSI against the configured thresholds.
func (c *CutlerRSI) State() OscillatorState {
	switch {
	case c.rsi >= c.overbought:
		return Overbought
	case c.rsi <= c.oversold:
		return Oversold
	default:
		return Nothing
	}
}
