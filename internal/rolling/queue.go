// Package rolling provides a fixed-capacity FIFO queue that evicts its
// oldest element when a new one is pushed at capacity. It is the backing
// window for every rolling estimator in this module.
//
// The queue is not safe for concurrent use; each estimator instance (and
// therefore each queue) must be owned by a single goroutine.
package rolling

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Dequeue when the queue holds no elements.
var ErrEmpty = errors.New("rolling: queue is empty")

// Queue is a fixed-capacity FIFO backed by a preallocated ring.
// Enqueue, Dequeue and Peek are O(1) with no allocations.
type Queue[T any] struct {
	buf   []T
	start int // index of the oldest element
	size  int
}

// New creates a queue with the given fixed capacity.
// Capacity must be at least 1.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("rolling: capacity must be greater than 0, got %d", capacity)
	}
	return &Queue[T]{buf: make([]T, capacity)}, nil
}

// Enqueue appends v. When the queue is at capacity the oldest element is
// evicted and returned with ok=true; otherwise ok is false.
func (q *Queue[T]) Enqueue(v T) (evicted T, ok bool) {
	if q.size == len(q.buf) {
		evicted = q.buf[q.start]
		q.buf[q.start] = v
		q.start = (q.start + 1) % len(q.buf)
		return evicted, true
	}
	q.buf[(q.start+q.size)%len(q.buf)] = v
	q.size++
	return evicted, false
}

// Dequeue removes and returns the oldest element.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}
	v := q.buf[q.start]
	q.buf[q.start] = zero
	q.start = (q.start + 1) % len(q.buf)
	q.size--
	return v, nil
}

// Peek returns the oldest element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	return q.buf[q.start], true
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.size == 0 }

// AtCapacity reports whether the next Enqueue will evict.
func (q *Queue[T]) AtCapacity() bool { return q.size == len(q.buf) }

// Len returns the current number of elements.
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// FillRatio returns how full the queue is, from 0 (empty) to 1 (at capacity).
func (q *Queue[T]) FillRatio() float64 {
	return float64(q.size) / float64(len(q.buf))
}

// Do calls fn on every element from oldest to newest, stopping early if fn
// returns false. Window-scanning oscillators use this to find extrema
// without allocating.
func (q *Queue[T]) Do(fn func(v T) bool) {
	for i := 0; i < q.size; i++ {
		if !fn(q.buf[(q.start+i)%len(q.buf)]) {
			return
		}
	}
}

// Values returns the elements oldest-first as a fresh slice.
func (q *Queue[T]) Values() []T {
	out := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.buf[(q.start+i)%len(q.buf)]
	}
	return out
}
