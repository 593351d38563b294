package stats

import "tradingtools/internal/rolling"

// Sum maintains the sum of the last `period` samples: one add and at most
// one subtract per update, so drift stays bounded for any stream length.
type Sum struct {
	window *rolling.Queue[float64]
	sum    float64
}

// NewSum returns a rolling sum over a window of `period` samples.
func NewSum(period int) (*Sum, error) {
	window, err := rolling.New[float64](period)
	if err != nil {
		return nil, err
	}
	return &Sum{window: window}, nil
}

// Update rolls the next sample into the window.
func (s *Sum) Update(value float64) {
	if evicted, ok := s.window.Enqueue(value); ok {
		s.sum -= evicted
	}
	s.sum += value
}

// Value returns the current window sum.
func (s *Sum) Value() float64 { return s.sum }

// Accurate reports whether the window has filled.
func (s *Sum) Accurate() bool { return s.window.AtCapacity() }
