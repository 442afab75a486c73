package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"parkcompare/internal/pkg/config"
	"parkcompare/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewProducer(cfg config.KafkaConfig, logger *slog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.BookingsTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: writer, logger: logger}
}

// PublishBookingConfirmed emits the confirmation event keyed by booking
// reference, so retries for the same booking land on the same partition.
func (p *Producer) PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	msg := kafka.Message{
		Key:   []byte(event.Reference),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}

	p.logger.Info("published booking event",
		slog.String("reference", event.Reference),
		slog.String("topic", p.writer.Topic),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
