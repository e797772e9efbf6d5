// Package pipeline provides a minimal, generic, sequential data pipeline:
// one source, zero or more filters, zero or more sinks, driven to
// completion by a single pull loop.
//
// Items flow one at a time — the next item is never pulled until the
// current one has been filtered and saved (or dropped). Filters
// short-circuit: an item survives only if every filter keeps it. The
// first sink error aborts the whole run with the cause preserved.
//
// The package never inspects or mutates item values; it only moves them
// between caller-supplied capability implementations.
//
// # Usage
//
//	p, err := pipeline.New[int]().
//	    Source(source.FromSlice([]int{1, 2, 3})).
//	    AddFilter(pipeline.FilterFunc[int](func(_ context.Context, n int) bool { return n%2 == 1 })).
//	    AddSink(collector).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	err = p.Run(ctx)
//
// Both Build and Run are one-shot: reusing a builder after Build or a
// pipeline after Run is rejected with a configuration error.
package pipeline
