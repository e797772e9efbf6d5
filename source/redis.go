package source

import (
	"context"
	stderrors "errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/pipekit/logger"
)

// RedisList is a Source that pops items from the head of a Redis list
// (LPOP), so items are observed in push order. The source reports
// exhaustion when the list is empty or the connection fails; elements
// that cannot be decoded are logged and skipped.
type RedisList[T any] struct {
	client *goredis.Client
	key    string
	decode DecodeFunc[T]
	log    *logger.Logger
}

// NewRedisList creates a Redis list source reading from key. A nil log
// disables logging.
func NewRedisList[T any](client *goredis.Client, key string, decode DecodeFunc[T], log *logger.Logger) *RedisList[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisList[T]{
		client: client,
		key:    key,
		decode: decode,
		log:    log.WithComponent("source.redis"),
	}
}

// Name identifies the source in logs and error details.
func (s *RedisList[T]) Name() string { return "source.redis:" + s.key }

// Next pops the next decodable element, or reports exhaustion.
func (s *RedisList[T]) Next(ctx context.Context) (T, bool) {
	var zero T
	for {
		data, err := s.client.LPop(ctx, s.key).Bytes()
		if err != nil {
			if !stderrors.Is(err, goredis.Nil) {
				s.log.Warn("redis pop failed", logger.ErrorFields("lpop", err))
			}
			return zero, false
		}
		item, err := s.decode(data)
		if err != nil {
			s.log.Warn("skipping undecodable element", logger.ErrorFields("decode", err))
			continue
		}
		return item, true
	}
}
