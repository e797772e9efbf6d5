package pipeline

import (
	"context"
	"time"

	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
)

// WithSourceLogging wraps a Source with per-item debug logging.
func WithSourceLogging[T any](s Source[T], name string, log *logger.Logger) Source[T] {
	return &loggingSource[T]{inner: s, name: name, log: log.WithComponent(name)}
}

type loggingSource[T any] struct {
	inner Source[T]
	name  string
	log   *logger.Logger
	count int
}

func (s *loggingSource[T]) Name() string { return s.name }

func (s *loggingSource[T]) Next(ctx context.Context) (T, bool) {
	item, ok := s.inner.Next(ctx)
	if !ok {
		s.log.Debug("source exhausted", logger.Fields(logger.FieldItems, s.count))
		return item, false
	}
	s.count++
	return item, true
}

// WithFilterLogging wraps a Filter and logs every drop decision.
func WithFilterLogging[T any](f Filter[T], name string, log *logger.Logger) Filter[T] {
	componentLog := log.WithComponent(name)
	return &namedFilter[T]{name: name, fn: func(ctx context.Context, item T) bool {
		keep := f.Keep(ctx, item)
		if !keep {
			componentLog.Debug("item dropped")
		}
		return keep
	}}
}

// WithSinkLogging wraps a Sink with save duration and error logging.
func WithSinkLogging[T any](s Sink[T], name string, log *logger.Logger) Sink[T] {
	componentLog := log.WithComponent(name)
	return &namedSink[T]{name: name, fn: func(ctx context.Context, item T) error {
		start := time.Now()
		err := s.Save(ctx, item)
		duration := time.Since(start)

		if err != nil {
			componentLog.Error("save failed", logger.ErrorFields("save", err))
			return err
		}
		componentLog.Debug("item saved", logger.DurationFields("save", duration))
		return nil
	}}
}

// WithSourceMetrics wraps a Source with item and duration metrics.
func WithSourceMetrics[T any](s Source[T], name string, metrics *observability.Metrics) Source[T] {
	return &namedSource[T]{name: name, fn: func(ctx context.Context) (T, bool) {
		start := time.Now()
		item, ok := s.Next(ctx)
		metrics.RecordStage(ctx, "next", name, "ok", time.Since(start))
		if ok {
			metrics.RecordItem(ctx, name, "produced")
		}
		return item, ok
	}}
}

// WithFilterMetrics wraps a Filter and records keep/drop outcomes.
func WithFilterMetrics[T any](f Filter[T], name string, metrics *observability.Metrics) Filter[T] {
	return &namedFilter[T]{name: name, fn: func(ctx context.Context, item T) bool {
		keep := f.Keep(ctx, item)
		if keep {
			metrics.RecordItem(ctx, name, "kept")
		} else {
			metrics.RecordItem(ctx, name, "dropped")
		}
		return keep
	}}
}

// WithSinkMetrics wraps a Sink with saved-item counts, durations, and
// error recording.
func WithSinkMetrics[T any](s Sink[T], name string, metrics *observability.Metrics) Sink[T] {
	return &namedSink[T]{name: name, fn: func(ctx context.Context, item T) error {
		start := time.Now()
		err := s.Save(ctx, item)
		duration := time.Since(start)

		status := "ok"
		if err != nil {
			status = "error"
			metrics.RecordError(ctx, "sink_failure", name)
		} else {
			metrics.RecordItem(ctx, name, "saved")
		}
		metrics.RecordStage(ctx, "save", name, status, duration)
		return err
	}}
}

// WithSinkTracing wraps a Sink with span creation per save.
func WithSinkTracing[T any](s Sink[T], name string) Sink[T] {
	return &namedSink[T]{name: name, fn: func(ctx context.Context, item T) error {
		ctx, span := observability.StartSpan(ctx, observability.SpanSinkSave)
		defer span.End()

		observability.SetSpanAttribute(ctx, "sink", name)

		err := s.Save(ctx, item)
		if err != nil {
			observability.SetSpanError(ctx, err)
		}
		return err
	}}
}

// WithSourceTracing wraps a Source with span creation per pull.
func WithSourceTracing[T any](s Source[T], name string) Source[T] {
	return &namedSource[T]{name: name, fn: func(ctx context.Context) (T, bool) {
		ctx, span := observability.StartSpan(ctx, observability.SpanSourceNext)
		defer span.End()

		observability.SetSpanAttribute(ctx, "source", name)
		return s.Next(ctx)
	}}
}

// RunObserved executes p.Run inside a pipeline-level span, logs the
// outcome, and records run metrics. metrics and log may be nil.
func RunObserved[T any](ctx context.Context, p *Pipeline[T], name string, metrics *observability.Metrics, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	ctx, span := observability.StartSpan(ctx, observability.SpanPipelineRun)
	defer span.End()
	observability.SetSpanAttribute(ctx, "pipeline", name)

	start := time.Now()
	err := p.Run(ctx)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		observability.SetSpanError(ctx, err)
		log.Error("pipeline run failed", logger.Fields(
			logger.FieldPipeline, name,
			logger.FieldError, err.Error(),
			logger.FieldDuration, duration.Milliseconds(),
		))
	} else {
		log.Info("pipeline run finished", logger.Fields(
			logger.FieldPipeline, name,
			logger.FieldDuration, duration.Milliseconds(),
		))
	}
	if metrics != nil {
		metrics.RecordRun(ctx, name, status, duration)
	}
	return err
}

// --- named wrappers ---

type namedSource[T any] struct {
	name string
	fn   func(ctx context.Context) (T, bool)
}

func (s *namedSource[T]) Name() string { return s.name }
func (s *namedSource[T]) Next(ctx context.Context) (T, bool) { return s.fn(ctx) }

type namedFilter[T any] struct {
	name string
	fn   func(ctx context.Context, item T) bool
}

func (f *namedFilter[T]) Name() string { return f.name }
func (f *namedFilter[T]) Keep(ctx context.Context, item T) bool { return f.fn(ctx, item) }

type namedSink[T any] struct {
	name string
	fn   func(ctx context.Context, item T) error
}

func (s *namedSink[T]) Name() string { return s.name }
func (s *namedSink[T]) Save(ctx context.Context, item T) error { return s.fn(ctx, item) }
