package sink

import (
	"context"
	"sync"

	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/pipeline"
)

// EncodeFunc converts an item into a byte payload. Adapters that write
// to external stores take one to turn T into stored bytes.
type EncodeFunc[T any] func(item T) ([]byte, error)

// Collector is a Sink that accumulates every item it receives.
// It is safe for concurrent use.
type Collector[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewCollector creates an empty collector.
func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{}
}

// Name identifies the sink in logs and error details.
func (c *Collector[T]) Name() string { return "sink.collector" }

// Save records the item.
func (c *Collector[T]) Save(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return nil
}

// Items returns a copy of everything collected so far, in arrival order.
func (c *Collector[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports how many items have been collected.
func (c *Collector[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

type discardSink[T any] struct{}

// Discard returns a Sink that accepts and drops every item.
func Discard[T any]() pipeline.Sink[T] {
	return discardSink[T]{}
}

func (discardSink[T]) Name() string { return "sink.discard" }

func (discardSink[T]) Save(context.Context, T) error { return nil }

type channelSink[T any] struct {
	ch chan<- T
}

// ToChannel returns a Sink that sends each item to ch. Save blocks
// until the send completes or the context is cancelled, in which case
// the context error is returned.
func ToChannel[T any](ch chan<- T) pipeline.Sink[T] {
	return &channelSink[T]{ch: ch}
}

func (s *channelSink[T]) Name() string { return "sink.channel" }

func (s *channelSink[T]) Save(ctx context.Context, item T) error {
	select {
	case s.ch <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type loggerSink[T any] struct {
	log *logger.Logger
	msg string
}

// ToLogger returns a Sink that logs each item at info level. A nil log
// uses the global logger.
func ToLogger[T any](log *logger.Logger, msg string) pipeline.Sink[T] {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	if msg == "" {
		msg = "item"
	}
	return &loggerSink[T]{log: log.WithComponent("sink.logger"), msg: msg}
}

func (s *loggerSink[T]) Name() string { return "sink.logger" }

func (s *loggerSink[T]) Save(_ context.Context, item T) error {
	s.log.Info(s.msg, map[string]interface{}{"item": item})
	return nil
}
