package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Publisher delivers enrollment events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, evt EnrollmentChanged) error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

// Publish performs no action.
func (NoopPublisher) Publish(context.Context, EnrollmentChanged) error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a single Kafka topic.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	return newKafkaPublisher(writer, topic)
}

func newKafkaPublisher(writer messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic}
}

// Publish encodes evt as JSON keyed by activity name, so one roster's events share a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, evt EnrollmentChanged) error {
	body, err := json.Marshal(evt)
	if err != nil {
		failedCounter.WithLabelValues(evt.EventType).Inc()
		return fmt.Errorf("encode %s event: %w", evt.EventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.Activity),
		Value: body,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.EventType)},
			{Key: "event_id", Value: []byte(evt.EventID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		failedCounter.WithLabelValues(evt.EventType).Inc()
		return fmt.Errorf("write %s event to %s: %w", evt.EventType, p.topic, err)
	}

	publishedCounter.WithLabelValues(evt.EventType).Inc()
	return nil
}

// Close flushes and releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
