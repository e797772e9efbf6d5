package sink

import (
	"context"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/kbukum/pipekit/logger"
)

// KafkaConfig holds the settings for a Kafka sink.
type KafkaConfig struct {
	Brokers      []string      `yaml:"brokers" mapstructure:"brokers" validate:"required,min=1"`
	Topic        string        `yaml:"topic" mapstructure:"topic" validate:"required"`
	BatchSize    int           `yaml:"batch_size" mapstructure:"batch_size"`
	BatchTimeout time.Duration `yaml:"batch_timeout" mapstructure:"batch_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// ApplyDefaults fills in zero-valued fields.
func (c *KafkaConfig) ApplyDefaults() {
	if c.BatchSize == 0 {
		c.BatchSize = 100
	}
	if c.BatchTimeout == 0 {
		c.BatchTimeout = time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
}

// Validate checks required fields.
func (c *KafkaConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return fmt.Errorf("kafka sink: at least one broker is required")
	}
	if c.Topic == "" {
		return fmt.Errorf("kafka sink: topic is required")
	}
	return nil
}

// MessageWriter is the slice of kafka-go's Writer the sink depends on.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Kafka is a Sink that publishes each item as one message to a Kafka
// topic. Items are encoded with the supplied EncodeFunc.
type Kafka[T any] struct {
	writer MessageWriter
	topic  string
	encode EncodeFunc[T]
	log    *logger.Logger
}

// NewKafka creates a Kafka sink from configuration. A nil log disables
// logging. The caller owns the sink and must Close it after the run.
func NewKafka[T any](cfg KafkaConfig, encode EncodeFunc[T], log *logger.Logger) (*Kafka[T], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.LeastBytes{},
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return NewKafkaWithWriter[T](writer, cfg.Topic, encode, log), nil
}

// NewKafkaWithWriter creates a Kafka sink around an existing writer.
// Useful when the writer needs transport settings this package does
// not expose, or for injecting a fake in tests.
func NewKafkaWithWriter[T any](writer MessageWriter, topic string, encode EncodeFunc[T], log *logger.Logger) *Kafka[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Kafka[T]{
		writer: writer,
		topic:  topic,
		encode: encode,
		log:    log.WithComponent("sink.kafka"),
	}
}

// Name identifies the sink in logs and error details.
func (s *Kafka[T]) Name() string { return "sink.kafka:" + s.topic }

// Save encodes the item and publishes it.
func (s *Kafka[T]) Save(ctx context.Context, item T) error {
	data, err := s.encode(item)
	if err != nil {
		return fmt.Errorf("encoding item for %s: %w", s.topic, err)
	}
	if err := s.writer.WriteMessages(ctx, kafkago.Message{Value: data}); err != nil {
		s.log.Warn("kafka write failed", logger.ErrorFields("write", err))
		return fmt.Errorf("publishing to %s: %w", s.topic, err)
	}
	return nil
}

// Close releases the underlying writer.
func (s *Kafka[T]) Close() error {
	return s.writer.Close()
}
