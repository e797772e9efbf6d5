package sink

import (
	"context"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublishesEncodedItems(t *testing.T) {
	w := &fakeWriter{}
	s := NewKafkaWithWriter[record](w, "events", JSON[record](), nil)

	if err := s.Save(context.Background(), record{ID: 5, Name: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.messages))
	}
	if string(w.messages[0].Value) != `{"id":5,"name":"x"}` {
		t.Fatalf("unexpected payload %q", w.messages[0].Value)
	}
}

func TestKafkaPropagatesWriteErrors(t *testing.T) {
	wantErr := errors.New("broker unreachable")
	w := &fakeWriter{err: wantErr}
	s := NewKafkaWithWriter[record](w, "events", JSON[record](), nil)

	err := s.Save(context.Background(), record{ID: 1})
	if err == nil || !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
}

func TestKafkaEncodeFailureSkipsWriter(t *testing.T) {
	w := &fakeWriter{}
	bad := func(record) ([]byte, error) { return nil, errors.New("no encoding") }
	s := NewKafkaWithWriter[record](w, "events", bad, nil)

	if err := s.Save(context.Background(), record{}); err == nil {
		t.Fatal("expected encode failure to surface")
	}
	if len(w.messages) != 0 {
		t.Fatal("expected nothing published on encode failure")
	}
}

func TestKafkaConfigValidation(t *testing.T) {
	cfg := KafkaConfig{Topic: "events"}
	if _, err := NewKafka[record](cfg, JSON[record](), nil); err == nil {
		t.Fatal("expected missing brokers to fail validation")
	}

	cfg = KafkaConfig{Brokers: []string{"localhost:9092"}}
	if _, err := NewKafka[record](cfg, JSON[record](), nil); err == nil {
		t.Fatal("expected missing topic to fail validation")
	}
}

func TestKafkaClose(t *testing.T) {
	w := &fakeWriter{}
	s := NewKafkaWithWriter[record](w, "events", JSON[record](), nil)
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.closed {
		t.Fatal("expected writer to be closed")
	}
}

func TestKafkaName(t *testing.T) {
	s := NewKafkaWithWriter[record](&fakeWriter{}, "events", JSON[record](), nil)
	if s.Name() != "sink.kafka:events" {
		t.Fatalf("unexpected name %q", s.Name())
	}
}
