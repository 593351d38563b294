package indicator

// SMMA is a smoothed moving average: an EMA whose multiplier is pinned to
// 1/period (classic Wilder smoothing) instead of being derived from a
// smoothing factor. RSI's steady phase runs on a pair of these.
type SMMA struct {
	EMA
}

// NewSMMA creates a smoothed moving average over `period` samples.
func NewSMMA(period int) (*SMMA, error) {
	ema, err := NewEMA(period)
	if err != nil {
		return nil, err
	}
	ema.multiplier = 1.0 / float64(period)
	return &SMMA{EMA: *ema}, nil
}
