package sink

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/pipekit/logger"
)

// RedisList is a Sink that appends items to the tail of a Redis list
// (RPUSH), so a later RedisList source observes them in save order.
type RedisList[T any] struct {
	client *goredis.Client
	key    string
	encode EncodeFunc[T]
	log    *logger.Logger
}

// NewRedisList creates a Redis list sink writing to key. A nil log
// disables logging.
func NewRedisList[T any](client *goredis.Client, key string, encode EncodeFunc[T], log *logger.Logger) *RedisList[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisList[T]{
		client: client,
		key:    key,
		encode: encode,
		log:    log.WithComponent("sink.redis"),
	}
}

// Name identifies the sink in logs and error details.
func (s *RedisList[T]) Name() string { return "sink.redis:" + s.key }

// Save encodes the item and appends it to the list.
func (s *RedisList[T]) Save(ctx context.Context, item T) error {
	data, err := s.encode(item)
	if err != nil {
		return fmt.Errorf("encoding item for %s: %w", s.key, err)
	}
	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		s.log.Warn("redis push failed", logger.ErrorFields("rpush", err))
		return fmt.Errorf("pushing to %s: %w", s.key, err)
	}
	return nil
}
