package indicator

import "testing"

// ────────────────────────────────────────────────────────────
// Envelope
// ────────────────────────────────────────────────────────────

func TestEnvelope_UniformDelta(t *testing.T) {
	e := NewEnvelope(0.1)
	if e.State() != Between {
		t.Errorf("initial state: got %v, want between", e.State())
	}

	e.Update(100, 120)
	assertClose(t, "above bound", e.AboveBound(), 110, 1e-9)
	assertClose(t, "below bound", e.BelowBound(), 90, 1e-9)
	if e.State() != Above {
		t.Errorf("state: got %v, want above", e.State())
	}

	e.Update(100, 101)
	if e.State() != Between {
		t.Errorf("state: got %v, want between", e.State())
	}
}

func TestEnvelope_BoundsAreInclusive(t *testing.T) {
	e := NewEnvelope(0.1)

	e.Update(100, 110)
	if e.State() != Above {
		t.Errorf("value exactly on the upper bound: got %v, want above", e.State())
	}

	e.Update(100, 90)
	if e.State() != Below {
		t.Errorf("value exactly on the lower bound: got %v, want below", e.State())
	}
}

func TestEnvelope_IndependentBands(t *testing.T) {
	e := NewEnvelopeBands(0.1, 0.05)

	e.Update(100, 90)
	assertClose(t, "above bound", e.AboveBound(), 110, 1e-9)
	assertClose(t, "below bound", e.BelowBound(), 95, 1e-9)
	if e.State() != Below {
		t.Errorf("state: got %v, want below", e.State())
	}
}

func TestEnvelope_SignalConversion(t *testing.T) {
	e := NewEnvelope(0.1)

	e.Update(100, 120)
	if got := e.Signal(false); got != Buy {
		t.Errorf("above signal: got %v, want buy", got)
	}
	if got := e.Signal(true); got != Sell {
		t.Errorf("inverted above signal: got %v, want sell", got)
	}

	e.Update(100, 80)
	if got := e.Signal(false); got != Sell {
		t.Errorf("below signal: got %v, want sell", got)
	}

	e.Update(100, 100)
	if got := e.Signal(false); got != Hold {
		t.Errorf("between signal: got %v, want hold", got)
	}
	if got := e.Signal(true); got != Hold {
		t.Errorf("inverted between signal: got %v, want hold", got)
	}
}

// ────────────────────────────────────────────────────────────
// Crossover
// ────────────────────────────────────────────────────────────

func TestCrossover_FreshIsEdgeTriggered(t *testing.T) {
	short, _ := NewSMA(1)
	long, _ := NewSMA(3)
	c, err := NewCrossover(short, long, false)
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		price float64
		want  Signal
		fresh bool
	}{
		{10, Buy, true},   // averages equal: buy, and the signal left Hold
		{9, Sell, true},   // short 9 < long 9.667
		{9, Sell, false},  // short 9 < long 9.333, unchanged
		{12, Buy, true},   // short 12 > long 10
		{13, Buy, false},  // still above
		{13, Buy, false},  // still above
		{5, Sell, true},   // short 5 < long 10.333
		{5, Sell, false},
	}

	for i, step := range steps {
		if err := c.Update(step.price); err != nil {
			t.Fatal(err)
		}
		if c.Signal() != step.want {
			t.Errorf("step %d: signal=%v, want %v", i, c.Signal(), step.want)
		}
		if c.Fresh() != step.fresh {
			t.Errorf("step %d: fresh=%v, want %v", i, c.Fresh(), step.fresh)
		}
	}
}

func TestCrossover_Inverted(t *testing.T) {
	short, _ := NewSMA(1)
	long, _ := NewSMA(3)
	c, _ := NewCrossover(short, long, true)

	c.Update(10)
	if c.Signal() != Sell {
		t.Errorf("inverted equal-averages signal: got %v, want sell", c.Signal())
	}
	c.Update(5)
	if c.Signal() != Buy {
		t.Errorf("inverted short-below-long signal: got %v, want buy", c.Signal())
	}
}

func TestCrossover_InvalidConfig(t *testing.T) {
	if _, err := NewCrossover(nil, nil, false); err == nil {
		t.Error("nil averages should be rejected")
	}
	if _, err := NewSMACrossover(0, 5, false); err == nil {
		t.Error("zero short period should be rejected")
	}
}

func TestCrossover_PeriodConstructor(t *testing.T) {
	c, err := NewSMACrossover(2, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		c.Update(float64(100 + i))
	}
	if c.Signal() != Buy {
		t.Errorf("uptrend: got %v, want buy", c.Signal())
	}
	if !c.Accurate() {
		t.Error("both windows filled, should be accurate")
	}
}
