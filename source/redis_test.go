package source

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	pkredis "github.com/kbukum/pipekit/redis"
)

type event struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := pkredis.Connect(context.Background(), pkredis.Config{Addr: mr.Addr()}, nil)
	if err != nil {
		t.Fatalf("connecting to test redis: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return mr, client.Unwrap()
}

func TestRedisListPopsInPushOrder(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.RPush("events", `{"id":1,"kind":"open"}`, `{"id":2,"kind":"close"}`)

	s := NewRedisList[event](client, "events", JSON[event](), nil)
	got := drain[event](t, s)

	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %v", got)
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("expected push order, got %v", got)
	}
}

func TestRedisListSkipsUndecodableElements(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.RPush("events", `not json`, `{"id":7,"kind":"open"}`)

	s := NewRedisList[event](client, "events", JSON[event](), nil)
	got := drain[event](t, s)

	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("expected only the valid event, got %v", got)
	}
}

func TestRedisListEmptyKeyIsExhausted(t *testing.T) {
	_, client := newTestRedis(t)
	s := NewRedisList[event](client, "missing", JSON[event](), nil)
	if _, ok := s.Next(context.Background()); ok {
		t.Fatal("expected missing key to exhaust the source")
	}
}

func TestRedisListName(t *testing.T) {
	_, client := newTestRedis(t)
	s := NewRedisList[event](client, "events", JSON[event](), nil)
	if s.Name() != "source.redis:events" {
		t.Fatalf("unexpected name %q", s.Name())
	}
}
