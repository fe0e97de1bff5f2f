package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher implements Publisher using segmentio/kafka-go.
// One writer serves all user topics; the topic is set per message.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a Kafka publisher for user events.
// brokers must be non-empty. Call Close when shutting down.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	if len(brokers) == 0 {
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer}
}

// PublishUserEvent serializes the event as JSON and writes it to the topic,
// keyed by user guid so per-user ordering is preserved across partitions.
// Uses a short timeout so a slow broker does not block callers indefinitely.
func (p *KafkaPublisher) PublishUserEvent(ctx context.Context, topic string, event *UserEvent) error {
	if p == nil || p.writer == nil || event == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = p.writer.WriteMessages(writeCtx, kafka.Message{
		Topic: topic,
		Key:   []byte(event.GUID),
		Value: payload,
	})
	if err != nil {
		log.Printf("events: kafka publish to %s failed: %v", topic, err)
		return err
	}
	return nil
}

// Close closes the Kafka writer. Safe to call multiple times.
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
