package source

import (
	"context"

	"github.com/kbukum/pipekit/pipeline"
)

// DecodeFunc converts a raw byte payload into an item. Adapters that
// read from external stores take one to turn stored bytes back into T.
type DecodeFunc[T any] func(data []byte) (T, error)

type sliceSource[T any] struct {
	items []T
}

// FromSlice returns a Source that drains the given slice in
// most-recently-appended-first order: the last element is yielded
// first. A slice [1, 2, 3, 4, 5] is observed as 5, 4, 3, 2, 1.
// Callers that need appended order should use FromQueue instead.
//
// The source takes ownership of the slice; it must not be mutated
// after the call.
func FromSlice[T any](items []T) pipeline.Source[T] {
	return &sliceSource[T]{items: items}
}

func (s *sliceSource[T]) Name() string { return "source.slice" }

func (s *sliceSource[T]) Next(_ context.Context) (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items = s.items[:last]
	return item, true
}

type queueSource[T any] struct {
	items []T
}

// FromQueue returns a Source that drains the given slice in appended
// (FIFO) order: the first element is yielded first.
//
// The source takes ownership of the slice; it must not be mutated
// after the call.
func FromQueue[T any](items []T) pipeline.Source[T] {
	return &queueSource[T]{items: items}
}

func (s *queueSource[T]) Name() string { return "source.queue" }

func (s *queueSource[T]) Next(_ context.Context) (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	item := s.items[0]
	s.items = s.items[1:]
	return item, true
}

type channelSource[T any] struct {
	ch <-chan T
}

// FromChannel returns a Source that receives items from ch. The source
// is exhausted when ch is closed or the context is cancelled.
func FromChannel[T any](ch <-chan T) pipeline.Source[T] {
	return &channelSource[T]{ch: ch}
}

func (s *channelSource[T]) Name() string { return "source.channel" }

func (s *channelSource[T]) Next(ctx context.Context) (T, bool) {
	select {
	case item, ok := <-s.ch:
		if !ok {
			var zero T
			return zero, false
		}
		return item, true
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}
