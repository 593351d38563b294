package stats

import (
	"math"
	"testing"
)

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f (tol=%.6f)", label, got, want, tol)
	}
}

// ────────────────────────────────────────────────────────────
// Running (Welford)
// ────────────────────────────────────────────────────────────

func TestRunning_Empty(t *testing.T) {
	r := NewRunning()
	if r.Mean() != 0 || r.Variance() != 0 || r.Stddev() != 0 {
		t.Errorf("empty accumulator should report zeros: mean=%v var=%v sd=%v",
			r.Mean(), r.Variance(), r.Stddev())
	}
}

func TestRunning_SingleSample(t *testing.T) {
	r := NewRunning()
	r.Push(42.5)
	assertClose(t, "mean of one sample", r.Mean(), 42.5, 1e-12)
	if r.Variance() != 0 {
		t.Errorf("variance of one sample: got %v, want 0", r.Variance())
	}
}

func TestRunning_KnownSeries(t *testing.T) {
	// Hand-checked: mean = 65/9, sum of squared deviations ≈ 69.556.
	data := []float64{5, 6, 7, 8, 9, 10, 12, 6, 2}

	r := NewRunning()
	for _, v := range data {
		r.Push(v)
	}

	wantMean := 65.0 / 9.0
	wantVar := 69.5555555556 / 8.0
	assertClose(t, "mean", r.Mean(), wantMean, 1e-6)
	assertClose(t, "variance", r.Variance(), wantVar, 1e-6)
	assertClose(t, "stddev", r.Stddev(), math.Sqrt(wantVar), 1e-6)

	if r.Count() != len(data) {
		t.Errorf("count: got %d, want %d", r.Count(), len(data))
	}
}

func TestRunning_ClearThenReuse(t *testing.T) {
	r := NewRunning()
	for _, v := range []float64{100, 200, 300} {
		r.Push(v)
	}
	r.Clear()

	if r.Count() != 0 {
		t.Fatalf("count after clear: got %d, want 0", r.Count())
	}
	if r.Mean() != 0 || r.Variance() != 0 {
		t.Errorf("cleared accumulator should report zeros: mean=%v var=%v",
			r.Mean(), r.Variance())
	}

	// The first push after Clear reseeds mean and deviations.
	r.Push(7)
	assertClose(t, "mean after clear+push", r.Mean(), 7, 1e-12)
	if r.Variance() != 0 {
		t.Errorf("variance after clear+push: got %v, want 0", r.Variance())
	}
	r.Push(9)
	assertClose(t, "mean after clear+2 pushes", r.Mean(), 8, 1e-12)
	assertClose(t, "variance after clear+2 pushes", r.Variance(), 2, 1e-9)
}

// ────────────────────────────────────────────────────────────
// Rolling (windowed)
// ────────────────────────────────────────────────────────────

func TestRolling_InvalidPeriod(t *testing.T) {
	if _, err := NewRolling(0); err == nil {
		t.Error("period 0 should be rejected")
	}
}

func TestRolling_FillThenRoll(t *testing.T) {
	r, err := NewRolling(5)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range []float64{5, 6, 7, 8, 9} {
		if r.Accurate() {
			t.Errorf("accurate before window filled (sample %d)", i)
		}
		r.Push(v)
	}

	if !r.Accurate() {
		t.Fatal("window of 5 filled but not accurate")
	}
	assertClose(t, "mean at fill", r.Mean(), 7, 1e-9)
	assertClose(t, "variance at fill", r.Variance(), 2.5, 1e-9)
	assertClose(t, "stddev at fill", r.Stddev(), math.Sqrt(2.5), 1e-9)

	// Window rolls: [6 7 8 9 4]
	r.Push(4)
	assertClose(t, "mean after roll", r.Mean(), 6.8, 1e-9)
	assertClose(t, "variance after roll", r.Variance(), 3.7, 1e-9)
}

func TestRolling_MatchesBatchOverLongStream(t *testing.T) {
	// The incremental update must track a from-scratch recomputation of the
	// window within float tolerance.
	const period = 7
	r, _ := NewRolling(period)

	var window []float64
	for i := 0; i < 500; i++ {
		v := math.Sin(float64(i)/3.0)*40 + float64(i%13)
		r.Push(v)
		window = append(window, v)
		if len(window) > period {
			window = window[1:]
		}
		if len(window) < period {
			continue
		}

		sum := 0.0
		for _, w := range window {
			sum += w
		}
		mean := sum / period
		varSum := 0.0
		for _, w := range window {
			varSum += (w - mean) * (w - mean)
		}

		assertClose(t, "rolling mean", r.Mean(), mean, 1e-6)
		assertClose(t, "rolling variance", r.Variance(), varSum/(period-1), 1e-6)
	}
}

func TestRolling_ConstantInput(t *testing.T) {
	r, _ := NewRolling(4)
	for i := 0; i < 50; i++ {
		r.Push(3.25)
	}
	assertClose(t, "constant mean", r.Mean(), 3.25, 1e-9)
	assertClose(t, "constant variance", r.Variance(), 0, 1e-9)
}

// ────────────────────────────────────────────────────────────
// Sum (windowed)
// ────────────────────────────────────────────────────────────

func TestSum_SteadyState(t *testing.T) {
	s, err := NewSum(5)
	if err != nil {
		t.Fatal(err)
	}

	// A thousand 1's through a window of 5 must hold the sum at 5.
	for i := 0; i < 1000; i++ {
		s.Update(1)
	}
	assertClose(t, "sum of ones", s.Value(), 5, 1e-9)

	for _, v := range []float64{1, 2, 3, 4, 5} {
		s.Update(v)
	}
	assertClose(t, "sum after refill", s.Value(), 15, 1e-9)

	// Evicts the oldest (1) and adds 6.
	s.Update(6)
	assertClose(t, "sum after roll", s.Value(), 20, 1e-9)
}

func TestSum_InvalidPeriod(t *testing.T) {
	if _, err := NewSum(0); err == nil {
		t.Error("period 0 should be rejected")
	}
}
