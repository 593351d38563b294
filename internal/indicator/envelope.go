package indicator

// EnvelopeState locates the last value relative to the envelope bounds.
// The ordinals match the Signal constants so states convert directly to
// trade signals.
type EnvelopeState int

const (
	Above EnvelopeState = iota
	Below
	Between
)

func (e EnvelopeState) String() string {
	switch e {
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "between"
	}
}

// Envelope plots bounds a fixed percentage above and below a trend
// average and classifies each value against them. Both comparisons are
// inclusive: a value exactly on a bound takes that bound's state.
type Envelope struct {
	abovePercent float64
	belowPercent float64
	aboveBound   float64
	belowBound   float64
	state        EnvelopeState
}

// NewEnvelope creates an envelope with a uniform percentage band, e.g.
// NewEnvelope(0.05) places bounds 5% above and below the average.
func NewEnvelope(delta float64) *Envelope {
	return NewEnvelopeBands(delta, delta)
}

// NewEnvelopeBands creates an envelope with independent above and below
// percentages.
func NewEnvelopeBands(above, below float64) *Envelope {
	return &Envelope{
		abovePercent: above,
		belowPercent: below,
		state:        Between,
	}
}

// Update recomputes the bounds around the given trend average and
// classifies the value.
func (e *Envelope) Update(average, value float64) error {
	for _, v := range [...]float64{average, value} {
		if err := checkInput(v); err != nil {
			return err
		}
	}

	e.aboveBound = average * (1 + e.abovePercent)
	e.belowBound = average * (1 - e.belowPercent)

	switch {
	case value >= e.aboveBound:
		e.state = Above
	case value <= e.belowBound:
		e.state = Below
	default:
		e.state = Between
	}
	return nil
}

// State returns the classification from the last update.
func (e *Envelope) State() EnvelopeState { return e.state }

// AboveBound returns the upper boundary from the last update.
func (e *Envelope) AboveBound() float64 { return e.aboveBound }

// BelowBound returns the lower boundary from the last update.
func (e *Envelope) BelowBound() float64 { return e.belowBound }

// Signal converts the state to a trade signal by shared ordinal: a value
// above the envelope signals a breakout buy, below a sell, between a
// hold. Pass invert=true for the mean-reversion reading.
func (e *Envelope) Signal(invert bool) Signal {
	s := Signal(e.state)
	if invert {
		return s.Invert()
	}
	return s
}
