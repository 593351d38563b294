package stats

import (
	"math"

	"tradingtools/internal/rolling"
)

// Rolling tracks mean and variance over the last `period` samples,
// adjusting both incrementally on every push instead of rescanning the
// window.
//
// The variance denominator is the fixed (period−1) regardless of how full
// the window is, so values reported before Accurate() returns true are
// biased; callers that need exact statistics must gate on Accurate().
type Rolling struct {
	window *rolling.Queue[float64]
	period int
	mean   float64
	varS   float64 // rolling sum of squared deviations
}

// NewRolling returns a rolling accumulator over a window of `period`
// samples. Period must be at least 1.
func NewRolling(period int) (*Rolling, error) {
	window, err := rolling.New[float64](period)
	if err != nil {
		return nil, err
	}
	return &Rolling{window: window, period: period}, nil
}

// Push rolls the next sample into the window.
func (r *Rolling) Push(value float64) {
	// front is the sample about to leave the window. Until the window has
	// filled nothing leaves, and on the very first push the mean is seeded
	// to the sample itself so both adjustment terms cancel.
	front, ok := r.window.Peek()
	if !ok {
		front = value
		r.mean = value
	}
	r.window.Enqueue(value)

	p := float64(r.period)
	newMean := r.mean - front/p + value/p
	// Algebraic identity for the windowed sum of squares: lets varS follow
	// the window in O(1) per push.
	r.varS += (value + front - r.mean - newMean) * (value - front)
	r.mean = newMean
}

// Mean returns the current window mean.
func (r *Rolling) Mean() float64 { return r.mean }

// Variance returns varS/(period−1). See the type comment for the warm-up
// caveat.
func (r *Rolling) Variance() float64 {
	return r.varS / float64(r.period-1)
}

// Stddev returns the window standard deviation.
func (r *Rolling) Stddev() float64 {
	return math.Sqrt(r.Variance())
}

// Period returns the window length.
func (r *Rolling) Period() int { return r.period }

// Accurate reports whether the window has filled.
func (r *Rolling) Accurate() bool { return r.window.AtCapacity() }
