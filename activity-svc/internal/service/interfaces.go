package service

import (
	"context"

	"kuchi/activity-svc/internal/domain"
	"kuchi/activity-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	Record(ctx context.Context, e domain.AuditEvent) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

var (
	_ StoreInterface = (*storage.Store)(nil)
	_ MessageReader  = (*kafka.Reader)(nil)
)
