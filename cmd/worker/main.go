package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightasset/config"
	"github.com/Domenick1991/flightasset/internal/email"
	"github.com/Domenick1991/flightasset/internal/kafka"
	"github.com/Domenick1991/flightasset/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format).With().Str("component", "worker").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AccountsTopic, log)
	defer consumer.Close()

	sender := email.NewSender(email.NewLogTransport(log))

	log.Info().Str("topic", cfg.Kafka.AccountsTopic).Msg("worker started")
	err = consumer.ConsumeAccountEvents(ctx, func(ctx context.Context, event kafka.AccountEvent) error {
		if err := sender.SendWelcome(ctx, event); err != nil {
			log.Error().Err(err).Str("username", event.Username).Msg("welcome email failed")
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("consumer stopped: %w", err)
	}
	log.Info().Msg("worker stopped")
	return nil
}
