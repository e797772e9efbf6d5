package source

import (
	"context"
	"testing"
)

func drain[T any](t *testing.T, s interface {
	Next(ctx context.Context) (T, bool)
}) []T {
	t.Helper()
	var out []T
	for {
		item, ok := s.Next(context.Background())
		if !ok {
			return out
		}
		out = append(out, item)
	}
}

func TestFromSliceYieldsLastAppendedFirst(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})
	got := drain[int](t, s)
	want := []int{5, 4, 3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFromSliceEmpty(t *testing.T) {
	s := FromSlice[string](nil)
	if _, ok := s.Next(context.Background()); ok {
		t.Fatal("expected empty slice source to be exhausted")
	}
}

func TestFromSliceExhaustionIsSticky(t *testing.T) {
	s := FromSlice([]int{1})
	if _, ok := s.Next(context.Background()); !ok {
		t.Fatal("expected one item")
	}
	for i := 0; i < 3; i++ {
		if _, ok := s.Next(context.Background()); ok {
			t.Fatal("expected exhausted source to stay exhausted")
		}
	}
}

func TestFromQueueYieldsAppendedOrder(t *testing.T) {
	s := FromQueue([]string{"a", "b", "c"})
	got := drain[string](t, s)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFromChannelDrainsUntilClose(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 10
	ch <- 20
	ch <- 30
	close(ch)

	got := drain[int](t, FromChannel(ch))
	if len(got) != 3 || got[0] != 10 || got[2] != 30 {
		t.Fatalf("expected [10 20 30], got %v", got)
	}
}

func TestFromChannelStopsOnCancel(t *testing.T) {
	ch := make(chan int) // unbuffered, never written
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := FromChannel(ch)
	if _, ok := s.Next(ctx); ok {
		t.Fatal("expected cancelled context to exhaust the source")
	}
}

func TestSourceNames(t *testing.T) {
	cases := []struct {
		name string
		got  string
	}{
		{"source.slice", FromSlice([]int{}).(interface{ Name() string }).Name()},
		{"source.queue", FromQueue([]int{}).(interface{ Name() string }).Name()},
		{"source.channel", FromChannel(make(chan int)).(interface{ Name() string }).Name()},
	}
	for _, c := range cases {
		if c.got != c.name {
			t.Errorf("expected name %q, got %q", c.name, c.got)
		}
	}
}
