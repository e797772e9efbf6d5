package sink

import (
	"context"
	"testing"

	"github.com/kbukum/pipekit/logger"
)

func TestCollectorRecordsInArrivalOrder(t *testing.T) {
	c := NewCollector[int]()
	for _, v := range []int{3, 1, 2} {
		if err := c.Save(context.Background(), v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := c.Items()
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("expected [3 1 2], got %v", got)
	}
	if c.Len() != 3 {
		t.Fatalf("expected Len 3, got %d", c.Len())
	}
}

func TestCollectorItemsReturnsCopy(t *testing.T) {
	c := NewCollector[int]()
	_ = c.Save(context.Background(), 1)

	items := c.Items()
	items[0] = 99

	if c.Items()[0] != 1 {
		t.Fatal("mutating the returned slice must not affect the collector")
	}
}

func TestDiscardAcceptsEverything(t *testing.T) {
	d := Discard[string]()
	for _, v := range []string{"a", "b"} {
		if err := d.Save(context.Background(), v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestToChannelDeliversItems(t *testing.T) {
	ch := make(chan int, 2)
	s := ToChannel(ch)

	if err := s.Save(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Save(context.Background(), 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := <-ch; got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := <-ch; got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
}

func TestToChannelReturnsContextError(t *testing.T) {
	ch := make(chan int) // unbuffered, no reader
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := ToChannel(ch)
	if err := s.Save(ctx, 1); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestToLoggerNeverFails(t *testing.T) {
	s := ToLogger[string](logger.Nop(), "observed")
	if err := s.Save(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSinkNames(t *testing.T) {
	cases := []struct {
		want string
		got  string
	}{
		{"sink.collector", NewCollector[int]().Name()},
		{"sink.discard", Discard[int]().(interface{ Name() string }).Name()},
		{"sink.channel", ToChannel(make(chan int)).(interface{ Name() string }).Name()},
		{"sink.logger", ToLogger[int](logger.Nop(), "").(interface{ Name() string }).Name()},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("expected name %q, got %q", c.want, c.got)
		}
	}
}
