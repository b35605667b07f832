// SPDX-License-Identifier: EPL-2.0

package track

import (
	"sync"

	"github.com/ik5/impulse/sample"
)

// queue is the transport shared between producer and consumer. The mutex is
// the single synchronization point of the whole pipeline.
type queue[T sample.Sample] struct {
	mu      sync.Mutex
	pending []T
	closed  bool
}

// Channel conduits samples for one track. The producer writes through a
// Sender; the owning (consumer) side drains into the accumulated buffer.
// Channel methods themselves are not goroutine-safe: exactly one owner
// drains and reads.
type Channel[T sample.Sample] struct {
	q       *queue[T]
	samples []T
}

// New returns a channel with an empty buffer and a fresh transport queue.
func New[T sample.Sample]() *Channel[T] {
	return &Channel[T]{q: &queue[T]{}}
}

// Sender returns a producer handle for the channel. Calling Sender more than
// once hands out additional clones of the same logical endpoint.
func (c *Channel[T]) Sender() Sender[T] {
	return Sender[T]{q: c.q}
}

// Drain moves all currently pending samples into the accumulated buffer,
// preserving arrival order, and returns how many were moved. Draining a
// closed channel with nothing pending returns 0; that is terminal, not an
// error.
func (c *Channel[T]) Drain() int {
	c.q.mu.Lock()
	pending := c.q.pending
	c.q.pending = nil
	c.q.mu.Unlock()

	c.samples = append(c.samples, pending...)
	return len(pending)
}

// Samples returns the accumulated buffer: every sample drained so far, in
// arrival order, with no gaps or duplicates. The slice is borrowed; callers
// must not hold it across the next Drain or mutate it.
func (c *Channel[T]) Samples() []T {
	return c.samples
}

// Len reports how many samples have been accumulated.
func (c *Channel[T]) Len() int {
	return len(c.samples)
}

// Close shuts the transport down. Pending but undrained samples are dropped
// and every outstanding Sender starts failing with ErrChannelClosed. The
// accumulated buffer stays readable.
func (c *Channel[T]) Close() {
	c.q.mu.Lock()
	c.q.closed = true
	c.q.pending = nil
	c.q.mu.Unlock()
}

// Sender is the producer endpoint of a Channel. It is a value handle over
// shared state: copies address the same track.
type Sender[T sample.Sample] struct {
	q *queue[T]
}

// Send enqueues one sample without blocking. Once the consumer side has
// closed the channel it returns ErrChannelClosed; the producer must treat
// that as "stop producing", not retry.
func (s Sender[T]) Send(v T) error {
	s.q.mu.Lock()
	defer s.q.mu.Unlock()

	if s.q.closed {
		return ErrChannelClosed
	}
	s.q.pending = append(s.q.pending, v)
	return nil
}

// SendSlice enqueues vs in order under one lock acquisition. The samples are
// copied, so the caller may reuse vs immediately.
func (s Sender[T]) SendSlice(vs []T) error {
	s.q.mu.Lock()
	defer s.q.mu.Unlock()

	if s.q.closed {
		return ErrChannelClosed
	}
	s.q.pending = append(s.q.pending, vs...)
	return nil
}
