package main

import (
	"context"
	"os/signal"
	"syscall"

	"kuchi/activity-svc/internal/service"
	"kuchi/activity-svc/internal/storage"
	"kuchi/config"

	"github.com/sirupsen/logrus"
)

func main() {
	var cfg config.Activity
	if err := config.Load(&cfg); err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logger := config.NewLogger("activity-svc", cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg.RedisAddr)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.AuditTopic, cfg.GroupID)
	defer reader.Close()

	store := storage.NewStore(rdb, cfg.Retention, cfg.RecentLimit)
	consumer := service.NewConsumer(reader, store, logger.WithField("component", "consumer"))
	consumer.Start(ctx)
}
