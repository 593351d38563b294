// Package stats provides online mean/variance estimation over price
// streams: unbounded running statistics (Welford) and fixed-window rolling
// statistics updated in O(1) per sample.
//
// Nothing in this package locks. One instance per goroutine.
package stats

import "math"

// Running accumulates mean and variance over an unbounded stream using
// Welford's algorithm (Knuth TAOCP vol 2, 3rd ed., p. 232).
type Running struct {
	n    int
	mean float64
	m2   float64 // sum of squared deviations from the mean
}

// NewRunning returns an empty running accumulator.
func NewRunning() *Running {
	return &Running{}
}

// Push folds the next sample into the accumulator.
func (r *Running) Push(value float64) {
	r.n++
	if r.n == 1 {
		r.mean = value
		r.m2 = 0
		return
	}
	delta := value - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (value - r.mean)
}

// Count returns the number of samples pushed since the last Clear.
func (r *Running) Count() int { return r.n }

// Mean returns the arithmetic mean of all samples, or 0 before any sample.
func (r *Running) Mean() float64 {
	if r.n == 0 {
		return 0
	}
	return r.mean
}

// Variance returns the Bessel-corrected sample variance, or 0 for fewer
// than two samples.
func (r *Running) Variance() float64 {
	if r.n < 2 {
		return 0
	}
	return r.m2 / float64(r.n-1)
}

// Stddev returns the sample standard deviation.
func (r *Running) Stddev() float64 {
	return math.Sqrt(r.Variance())
}

// Clear resets the sample count. The mean and deviation accumulators keep
// their last values until the first Push after Clear overwrites them; the
// accessors guard on the count, so nothing stale is ever reported.
func (r *Running) Clear() {
	r.n = 0
}
