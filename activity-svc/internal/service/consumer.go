package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kuchi/activity-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const readBackoff = time.Second

var ErrMalformedEvent = errors.New("malformed audit event")

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *logrus.Entry
	// Backoff spaces out read and store retries.
	Backoff time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface, log *logrus.Entry) *Consumer {
	return &Consumer{
		Reader:  reader,
		Store:   store,
		Log:     log,
		Backoff: readBackoff,
	}
}

// Start consumes until ctx is cancelled. An offset is committed only after its
// event is recorded; malformed events are logged and committed without recording.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("starting activity consumer")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Log.Info("activity consumer stopped")
				return
			}
			c.Log.WithError(err).Error("fetch message")
			if !c.wait(ctx) {
				return
			}
			continue
		}

		if !c.handle(ctx, message) {
			c.Log.Info("activity consumer stopped")
			return
		}
		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				return
			}
			c.Log.WithError(err).WithField("offset", message.Offset).Error("commit message")
		}
	}
}

// handle retries store failures until the event is recorded or ctx ends.
func (c *Consumer) handle(ctx context.Context, message kafka.Message) bool {
	for {
		err := c.Process(ctx, message.Value)
		if err == nil {
			return true
		}
		if errors.Is(err, ErrMalformedEvent) {
			c.Log.WithError(err).WithField("offset", message.Offset).Warn("skipping message")
			return true
		}
		c.Log.WithError(err).WithField("offset", message.Offset).Warn("retrying message")
		if !c.wait(ctx) {
			return false
		}
	}
}

func (c *Consumer) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.Backoff):
		return true
	}
}

func (c *Consumer) Process(ctx context.Context, payload []byte) error {
	var event domain.AuditEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.RestaurantID == "" || event.LogType == "" || event.AffectedEntity == "" {
		return fmt.Errorf("%w: missing restaurant, log type or entity", ErrMalformedEvent)
	}

	if err := c.Store.Record(ctx, event); err != nil {
		return fmt.Errorf("record event %s: %w", event.ID, err)
	}

	c.Log.WithFields(logrus.Fields{
		"restaurant_id": event.RestaurantID,
		"counter":       event.CounterMember(),
	}).Debug("event recorded")
	return nil
}
