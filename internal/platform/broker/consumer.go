package broker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"kortyPricing/internal/modules/pricing/domain"
)

type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID string, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}

// Consume reads until the context is cancelled. Handler failures are logged
// and do not stop consumption; a rejected catalog must not wedge the stream.
func (c *KafkaConsumer) Consume(ctx context.Context, handler func(*domain.Message) error) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			continue
		}
		msg := decodeMessage(m)
		slog.Info("kafka message consumed",
			slog.String("topic", msg.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.String("action", msg.Action),
		)
		if err := handler(msg); err != nil {
			slog.Warn("kafka handler error", slog.String("topic", msg.Topic), slog.Any("error", err))
		}
	}
}

// rawEvent is the optional JSON envelope producers may wrap payloads in.
type rawEvent struct {
	Topic    string            `json:"topic"`
	Action   string            `json:"action"`
	Metadata map[string]string `json:"metadata"`
	Data     any               `json:"data"`
}

// decodeMessage unwraps an enveloped payload, falling back to the raw value
// (the price updater pushes bare YAML documents).
func decodeMessage(m kafka.Message) *domain.Message {
	msg := &domain.Message{Topic: m.Topic, Timestamp: time.Now().UTC()}

	var event rawEvent
	if err := json.Unmarshal(m.Value, &event); err != nil || event.Data == nil {
		msg.Data = string(m.Value)
		return msg
	}

	if event.Topic != "" {
		msg.Topic = event.Topic
	}
	msg.Action = event.Action
	msg.Metadata = event.Metadata
	msg.Data = event.Data
	return msg
}
