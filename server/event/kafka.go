package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher publishes votes to a Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher writing to the given brokers and
// topic. Messages are keyed by poll ID with a hash balancer, so all votes of
// one poll land on the same partition and keep their order. RequireAll acks
// trade latency for durability.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  5,
		Compression:  kafka.Snappy,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishVote(ctx context.Context, vote Vote) error {
	b, err := json.Marshal(vote)
	if err != nil {
		return errors.Wrap(err, "failed to marshal vote")
	}
	msg := kafka.Message{
		Key:   []byte(vote.PollID),
		Value: b,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to write vote to kafka")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return errors.Wrap(err, "failed to close kafka writer")
	}
	return nil
}
