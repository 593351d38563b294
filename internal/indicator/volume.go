package indicator

// OBV keeps a running on-balance volume total: volume is added on up
// closes and subtracted on down closes. Single-pass, unbounded memory
// footprint of one float.
type OBV struct {
	obv       float64
	lastPrice float64
}

// NewOBV returns a zeroed on-balance volume accumulator.
func NewOBV() *OBV {
	return &OBV{}
}

// Update folds in one bar's volume and close.
func (o *OBV) Update(volume, close float64) error {
	for _, v := range [...]float64{volume, close} {
		if err := checkInput(v); err != nil {
			return err
		}
	}
	if close > o.lastPrice {
		o.obv += volume
	} else if close < o.lastPrice {
		o.obv -= volume
	}
	o.lastPrice = close
	return nil
}

// Value returns the running OBV total.
func (o *OBV) Value() float64 { return o.obv }

// ADLine keeps a running accumulation/distribution total. A rising A/D
// confirms an uptrend; divergence from price hints at a reversal.
// A bar with high == low is not guarded and propagates a non-finite term.
type ADLine struct {
	ad float64
}

// NewADLine returns a zeroed accumulation/distribution accumulator.
func NewADLine() *ADLine {
	return &ADLine{}
}

// Update folds in one bar.
func (a *ADLine) Update(close, high, low, volume float64) error {
	for _, v := range [...]float64{close, high, low, volume} {
		if err := checkInput(v); err != nil {
			return err
		}
	}
	a.ad += (((close - low) - (high - close)) / (high - low)) * volume
	return nil
}

// Value returns the running A/D total.
func (a *ADLine) Value() float64 { return a.ad }
