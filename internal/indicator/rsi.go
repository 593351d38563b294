package indicator

// RSI computes the Relative Strength Index over signed price deltas.
//
// It runs as a two-phase state machine. While warming, the up and down
// trackers are SMAs; on the update where the up tracker first reports
// accurate, both are replaced by SMMAs seeded with the outgoing SMA
// averages (one synthetic update each) and every later update routes
// through the smoothed pair. The transition fires exactly once.
type RSI struct {
	period     int
	up         MovingAverage
	down       MovingAverage
	lastPrice  float64
	hasLast    bool
	steady     bool
	rs         float64
	rsi        float64
	oversold   float64
	overbought float64
}

// NewRSI creates an RSI with the conventional 14-sample period and
// 30/70 oversold/overbought thresholds.
func NewRSI() (*RSI, error) {
	return NewRSIConfig(14, 30, 70)
}

// NewRSIConfig creates an RSI with explicit period and thresholds.
// Thresholds are on the 0–100 RSI scale.
func NewRSIConfig(period int, oversold, overbought float64) (*RSI, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	up, err := NewSMA(period)
	if err != nil {
		return nil, err
	}
	down, err := NewSMA(period)
	if err != nil {
		return nil, err
	}
	return &RSI{
		period:     period,
		up:         up,
		down:       down,
		oversold:   oversold,
		overbought: overbought,
	}, nil
}

// Update feeds the next price.
func (r *RSI) Update(value float64) error {
	if err := checkInput(value); err != nil {
		return err
	}

	if !r.hasLast {
		r.lastPrice = value
		r.hasLast = true
	}

	up := 0.0
	down := 0.0
	if value > r.lastPrice {
		up = value - r.lastPrice
	} else if value < r.lastPrice {
		down = r.lastPrice - value
	}

	if !r.steady && r.up.Accurate() {
		// Hand off from the simple to the smoothed pair, carrying the
		// current averages over as the seeds.
		oldUp := r.up.Average()
		oldDown := r.down.Average()
		smmaUp, err := NewSMMA(r.period)
		if err != nil {
			return err
		}
		smmaDown, err := NewSMMA(r.period)
		if err != nil {
			return err
		}
		smmaUp.Update(oldUp)
		smmaDown.Update(oldDown)
		r.up = smmaUp
		r.down = smmaDown
		r.steady = true
	}

	r.up.Update(up)
	r.down.Update(down)

	if r.down.Average() > 0 {
		r.rs = r.up.Average() / r.down.Average()
		r.rsi = 100 - (100 / (1 + r.rs))
	} else {
		// No losses in the window: maximal strength by convention.
		r.rsi = 100
	}

	r.lastPrice = value
	return nil
}

// Value returns the current RSI, in the range 0–100.
func (r *RSI) Value() float64 { return r.rsi }

// RS returns the relative strength without indexing.
func (r *RSI) RS() float64 { return r.rs }

// Accurate reports whether the smoothed phase has been reached.
func (r *RSI) Accurate() bool { return r.steady }

// State classifies the current RSI against the configured thresholds.
func (r *RSI) State() OscillatorState {
	switch {
	case r.rsi >= r.overbought:
		return Overbought
	case r.rsi <= r.oversold:
		return Oversold
	default:
		return Nothing
	}
}
