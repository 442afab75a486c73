package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"parkcompare/internal/infra/events"
	"parkcompare/internal/infra/mail"
	"parkcompare/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// The notification worker consumes booking-confirmed events and sends the
// confirmation email. It runs separately from the API so a slow SMTP
// server never holds up checkout.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	consumer := events.NewConsumer(cfg.Kafka)
	defer consumer.Close()

	sender := mail.NewSender(cfg.Mail)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("notification worker started",
		"brokers", cfg.Kafka.Brokers,
		"topic", cfg.Kafka.BookingsTopic,
		"group", cfg.Kafka.GroupID,
	)

	handler := func(ctx context.Context, msg kafka.Message) error {
		var event events.BookingConfirmed
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// A malformed message would be redelivered forever; log and move on.
			logger.Error("skipping malformed event", "key", string(msg.Key), "error", err)
			return nil
		}

		if err := sender.SendBookingConfirmation(event); err != nil {
			logger.Error("failed to send confirmation email",
				"reference", event.Reference,
				"error", err,
			)
			return nil
		}

		logger.Info("confirmation email sent", "reference", event.Reference)
		return nil
	}

	if err := consumer.Consume(ctx, handler); err != nil && ctx.Err() == nil {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("notification worker stopped")
}
