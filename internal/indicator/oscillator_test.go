package indicator

import (
	"errors"
	"math"
	"testing"
)

// ────────────────────────────────────────────────────────────
// MACD
// ────────────────────────────────────────────────────────────

func TestMACD_WithCustomAverages(t *testing.T) {
	short, _ := NewSMA(1)
	long, _ := NewSMA(2)
	macd, err := NewMACDWith(short, long)
	if err != nil {
		t.Fatal(err)
	}

	macd.Update(10)
	assertClose(t, "first sample", macd.Value(), 0, 1e-9)

	// short = 14, long = 10 + (14−10)/2 = 12
	macd.Update(14)
	assertClose(t, "after divergence", macd.Value(), 2, 1e-9)
}

func TestMACD_DefaultEMAs(t *testing.T) {
	macd, err := NewMACD(12, 26)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 60; i++ {
		macd.Update(float64(100 + i))
	}
	if macd.Value() <= 0 {
		t.Errorf("rising prices: macd=%v, want > 0", macd.Value())
	}
	if !macd.Accurate() {
		t.Error("both sides should be warmed up after 60 samples")
	}

	for i := 0; i < 60; i++ {
		macd.Update(float64(160 - i))
	}
	if macd.Value() >= 0 {
		t.Errorf("falling prices: macd=%v, want < 0", macd.Value())
	}
}

func TestMACD_InvalidConfig(t *testing.T) {
	if _, err := NewMACD(0, 26); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("short period 0: got %v, want ErrInvalidConfig", err)
	}
	if _, err := NewMACDWith(nil, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil averages: got %v, want ErrInvalidConfig", err)
	}
}

// ────────────────────────────────────────────────────────────
// Bollinger
// ────────────────────────────────────────────────────────────

func TestBollinger_HandComputedBands(t *testing.T) {
	b, err := NewBollinger(3, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Degenerate bars so the typical price equals the close.
	b.Update(3, 3, 3)
	assertClose(t, "upper after one bar", b.UpperBand(), 3, 1e-9)
	assertClose(t, "lower after one bar", b.LowerBand(), 3, 1e-9)
	if b.Accurate() {
		t.Error("accurate before the window filled")
	}

	// Window still filling: running fallback stddev of {3,6} = 2.12132,
	// SMA(3) average = 4.
	b.Update(6, 6, 6)
	sd := math.Sqrt(4.5)
	assertClose(t, "upper during warm-up", b.UpperBand(), 4+2*sd, 1e-6)
	assertClose(t, "lower during warm-up", b.LowerBand(), 4-2*sd, 1e-6)

	// Window full: rolling stddev of {3,6,9} = 3, average = 6.
	b.Update(9, 9, 9)
	if !b.Accurate() {
		t.Fatal("window of 3 should be accurate")
	}
	assertClose(t, "middle band", b.Average(), 6, 1e-9)
	assertClose(t, "upper band", b.UpperBand(), 12, 1e-6)
	assertClose(t, "lower band", b.LowerBand(), 0, 1e-6)
}

func TestBollinger_TypicalPrice(t *testing.T) {
	b, _ := NewBollinger(2, 2)
	// tp = (high + low + close)/3 = (30 + 10 + 20)/3 = 20
	b.Update(20, 30, 10)
	assertClose(t, "typical price average", b.Average(), 20, 1e-9)
}

func TestBollinger_RejectsNonFinite(t *testing.T) {
	b, _ := NewBollinger(3, 2)
	b.Update(10, 11, 9)
	before := b.UpperBand()

	if err := b.Update(math.NaN(), 11, 9); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN close: got %v, want ErrInvalidInput", err)
	}
	if err := b.Update(10, math.Inf(1), 9); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Inf high: got %v, want ErrInvalidInput", err)
	}
	assertClose(t, "bands unchanged after rejected updates", b.UpperBand(), before, 1e-12)
}

// ────────────────────────────────────────────────────────────
// Stochastic
// ────────────────────────────────────────────────────────────

func TestStochastic_PercentK(t *testing.T) {
	s, err := NewStochastic(3, 20, 80)
	if err != nil {
		t.Fatal(err)
	}

	// Lookback extrema: low 9, high 11.
	s.Update(10, 11, 9)
	assertClose(t, "%K first bar", s.PercentK(), 50, 1e-9)

	// Lookback grows: low 9, high 12.
	s.Update(11, 12, 10)
	assertClose(t, "%K second bar", s.PercentK(), (11.0-9.0)/3.0*100, 1e-9)

	// Third bar fills the window.
	s.Update(12, 12, 11)
	if !s.Accurate() {
		t.Error("window of 3 should be accurate")
	}
	assertClose(t, "%K third bar", s.PercentK(), 100, 1e-9)
	if s.State() != Overbought {
		t.Errorf("state at %%K=100: got %v, want overbought", s.State())
	}

	// The first bar (high 11/low 9) rolls out: extrema become 12/10.
	s.Update(10, 12, 10)
	assertClose(t, "%K after roll", s.PercentK(), 0, 1e-9)
	if s.State() != Oversold {
		t.Errorf("state at %%K=0: got %v, want oversold", s.State())
	}
}

func TestStochastic_FlatWindowIsNonFinite(t *testing.T) {
	// A zero-width window divides by zero; the result propagates rather
	// than being masked.
	s, _ := NewStochastic(3, 20, 80)
	s.Update(5, 5, 5)
	if !math.IsNaN(s.PercentK()) {
		t.Errorf("flat window: got %v, want NaN", s.PercentK())
	}
}

// ────────────────────────────────────────────────────────────
// Williams %R
// ────────────────────────────────────────────────────────────

func TestWilliamsR_Range(t *testing.T) {
	w, err := NewWilliamsR(3, -20, -80)
	if err != nil {
		t.Fatal(err)
	}

	// A single sample makes the window flat, so the ratio is 0/0.
	w.Update(10)
	if !math.IsNaN(w.Range()) {
		t.Errorf("first sample: got %v, want NaN", w.Range())
	}

	// Lookback {10, 12}: (12−12)/(12−10) = 0.
	w.Update(12)
	assertClose(t, "%R at new high", w.Range(), 0, 1e-9)

	// Lookback {10, 12, 11}: (12−11)/(12−10) = 0.5.
	w.Update(11)
	if !w.Accurate() {
		t.Error("window of 3 should be accurate")
	}
	assertClose(t, "%R mid-window", w.Range(), 0.5, 1e-9)
}

func TestWilliamsR_WindowRollsOldExtremes(t *testing.T) {
	w, _ := NewWilliamsR(2, -20, -80)
	w.Update(100)
	w.Update(50)
	// 100 rolls out; lookback {50, 75}: (75−75)/(75−50) = 0.
	w.Update(75)
	assertClose(t, "%R after extreme rolls out", w.Range(), 0, 1e-9)
}

// ────────────────────────────────────────────────────────────
// OBV / A-D line
// ────────────────────────────────────────────────────────────

func TestOBV_SignedVolumeTotal(t *testing.T) {
	obv := NewOBV()

	obv.Update(100, 10) // up vs initial 0
	assertClose(t, "first bar", obv.Value(), 100, 1e-9)

	obv.Update(50, 9) // down close
	assertClose(t, "down close", obv.Value(), 50, 1e-9)

	obv.Update(30, 9) // unchanged close contributes nothing
	assertClose(t, "flat close", obv.Value(), 50, 1e-9)

	obv.Update(20, 11)
	assertClose(t, "up close", obv.Value(), 70, 1e-9)
}

func TestADLine_Accumulation(t *testing.T) {
	ad := NewADLine()

	// Close in the middle of the bar: zero money-flow contribution.
	ad.Update(7, 8, 6, 100)
	assertClose(t, "mid-bar close", ad.Value(), 0, 1e-9)

	// Close at the high: full positive contribution.
	ad.Update(8, 8, 6, 100)
	assertClose(t, "close at high", ad.Value(), 100, 1e-9)

	// Close at the low: full negative contribution.
	ad.Update(6, 8, 6, 50)
	assertClose(t, "close at low", ad.Value(), 50, 1e-9)
}
