package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Consumer struct {
	reader MessageReader
	log    zerolog.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log zerolog.Logger) *Consumer {
	return NewConsumerWithReader(kafka.NewReader(kafka.ReaderConfig{
		Brokers:           brokers,
		GroupID:           groupID,
		Topic:             topic,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	}), log)
}

func NewConsumerWithReader(reader MessageReader, log zerolog.Logger) *Consumer {
	return &Consumer{reader: reader, log: log}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads until ctx is cancelled or the handler fails. A cancelled
// context ends the loop without error.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
}

// ConsumeAccountEvents decodes each message as an AccountEvent. Messages that
// do not decode are logged and skipped.
func (c *Consumer) ConsumeAccountEvents(ctx context.Context, handle func(context.Context, AccountEvent) error) error {
	return c.Consume(ctx, func(ctx context.Context, msg kafka.Message) error {
		var event AccountEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Warn().Err(err).Int64("offset", msg.Offset).Msg("skipping undecodable account event")
			return nil
		}
		return handle(ctx, event)
	})
}
