package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/travelpackages/config"
	"github.com/Domenick1991/travelpackages/internal/kafka"
	"github.com/Domenick1991/travelpackages/internal/logger"
	"github.com/Domenick1991/travelpackages/internal/notify"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run returns the exit code; deferred cleanup finishes before main exits.
func run() int {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Printf("init logger: %v", err)
		return 1
	}
	defer zl.Sync()

	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		zl.Error("kafka brokers and notifications topic are required")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, zl)
	defer consumer.Close()

	notifier := notify.NewNotifier(zl)

	zl.Info("worker consuming",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.NotificationsTopic),
	)
	if err := consumer.Consume(ctx, notifier.Send); err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("consumer stopped", zap.Error(err))
		return 1
	}
	zl.Info("worker stopped")
	return 0
}
