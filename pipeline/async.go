package pipeline

import "context"

// The asynchronous capability variants mirror the synchronous set with
// identical per-call contracts: same keep/drop and success/failure
// semantics, intended for single-threaded cooperative scheduling. The
// only suspension point is the channel receive at each capability
// boundary, so item and stage ordering is preserved by construction.
// Bridge them into a Builder with FromAsyncSource, FromAsyncFilter, and
// FromAsyncSink — the sequential run loop serves both sets.

// AsyncSource yields the pipeline's items over a channel. The channel
// is closed when the source is exhausted.
type AsyncSource[T any] interface {
	Items(ctx context.Context) <-chan T
}

// AsyncFilter decides keep/drop for one item, delivering exactly one
// decision on the returned channel. Like Filter, it cannot fail.
type AsyncFilter[T any] interface {
	Keep(ctx context.Context, item T) <-chan bool
}

// AsyncSink records one item, delivering exactly one result on the
// returned channel; a nil result means success.
type AsyncSink[T any] interface {
	Save(ctx context.Context, item T) <-chan error
}

// AsyncSourceFunc adapts a function to the AsyncSource interface.
type AsyncSourceFunc[T any] func(ctx context.Context) <-chan T

// Items implements AsyncSource.
func (f AsyncSourceFunc[T]) Items(ctx context.Context) <-chan T { return f(ctx) }

// AsyncFilterFunc adapts a function to the AsyncFilter interface.
type AsyncFilterFunc[T any] func(ctx context.Context, item T) <-chan bool

// Keep implements AsyncFilter.
func (f AsyncFilterFunc[T]) Keep(ctx context.Context, item T) <-chan bool { return f(ctx, item) }

// AsyncSinkFunc adapts a function to the AsyncSink interface.
type AsyncSinkFunc[T any] func(ctx context.Context, item T) <-chan error

// Save implements AsyncSink.
func (f AsyncSinkFunc[T]) Save(ctx context.Context, item T) <-chan error { return f(ctx, item) }

// FromAsyncSource bridges an AsyncSource into the synchronous Source
// interface by awaiting one item per Next call. The stream is opened
// lazily on the first call. Context cancellation is observed as
// exhaustion, since sources cannot fail by contract.
func FromAsyncSource[T any](s AsyncSource[T]) Source[T] {
	return &asyncSourceBridge[T]{inner: s}
}

type asyncSourceBridge[T any] struct {
	inner AsyncSource[T]
	items <-chan T
}

func (b *asyncSourceBridge[T]) Next(ctx context.Context) (T, bool) {
	if b.items == nil {
		b.items = b.inner.Items(ctx)
	}
	select {
	case item, ok := <-b.items:
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

// FromAsyncFilter bridges an AsyncFilter into the synchronous Filter
// interface by awaiting the decision at the capability boundary. A
// cancelled context drops the item (the conservative decision).
func FromAsyncFilter[T any](f AsyncFilter[T]) Filter[T] {
	return FilterFunc[T](func(ctx context.Context, item T) bool {
		select {
		case keep := <-f.Keep(ctx, item):
			return keep
		case <-ctx.Done():
			return false
		}
	})
}

// FromAsyncSink bridges an AsyncSink into the synchronous Sink
// interface by awaiting the result at the capability boundary.
func FromAsyncSink[T any](s AsyncSink[T]) Sink[T] {
	return SinkFunc[T](func(ctx context.Context, item T) error {
		select {
		case err := <-s.Save(ctx, item):
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
