package indicator

import "tradingtools/internal/rolling"

// SMA averages the samples in a fixed rolling window. Each update adjusts
// the average by the difference between the incoming sample and the window
// front, scaled by a precomputed reciprocal, so the window is never
// rescanned.
type SMA struct {
	window  *rolling.Queue[float64]
	recip   float64 // 1/period
	average float64
}

// NewSMA creates a simple moving average over `period` samples.
func NewSMA(period int) (*SMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	window, err := rolling.New[float64](period)
	if err != nil {
		return nil, err
	}
	return &SMA{
		window: window,
		recip:  1.0 / float64(period),
	}, nil
}

func (s *SMA) Update(value float64) error {
	if err := checkInput(value); err != nil {
		return err
	}

	// front is the oldest sample in the window. While the window is still
	// filling it stays put, and on the very first sample the average is
	// seeded to the sample itself so the adjustment below cancels out.
	front, ok := s.window.Peek()
	if !ok {
		s.average = value
		front = value
	}

	s.window.Enqueue(value)
	s.average += (value - front) * s.recip
	return nil
}

func (s *SMA) Average() float64 { return s.average }

// Accurate reports whether the window has filled. Before that the average
// is an approximation anchored to the first sample.
func (s *SMA) Accurate() bool { return s.window.AtCapacity() }

// Period returns the window length.
func (s *SMA) Period() int { return s.window.Cap() }
