package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kuchi/activity-svc/internal/domain"
	"kuchi/activity-svc/internal/mocks"
	"kuchi/activity-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// queueReader hands out the queued messages, records commits and cancels
// once the queue is drained.
type queueReader struct {
	messages  []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *queueReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *queueReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func runConsumer(t *testing.T, consumer *service.Consumer, ctx context.Context) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		consumer.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}

func nullLog() *logrus.Entry {
	logger, _ := logtest.NewNullLogger()
	return logrus.NewEntry(logger)
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		prepare func(store *mocks.StoreInterface)
		wantErr error
	}{
		{
			name:    "not json",
			payload: "{",
			wantErr: service.ErrMalformedEvent,
		},
		{
			name:    "missing restaurant",
			payload: `{"logType":"CREATE","affectedEntity":"CATEGORY"}`,
			wantErr: service.ErrMalformedEvent,
		},
		{
			name:    "recorded",
			payload: `{"id":"1","restaurantId":"r1","logType":"CREATE","affectedEntity":"CATEGORY","createdAt":"2026-03-14T12:00:00Z"}`,
			prepare: func(store *mocks.StoreInterface) {
				store.On("Record", mock.Anything, mock.MatchedBy(func(e domain.AuditEvent) bool {
					return e.RestaurantID == "r1" && e.CounterMember() == "CATEGORY:CREATE"
				})).Return(nil).Once()
			},
		},
		{
			name:    "store failure",
			payload: `{"id":"1","restaurantId":"r1","logType":"CREATE","affectedEntity":"CATEGORY"}`,
			prepare: func(store *mocks.StoreInterface) {
				store.On("Record", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
			wantErr: errors.New("record event 1: redis down"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStoreInterface(t)
			if testCase.prepare != nil {
				testCase.prepare(store)
			}
			consumer := service.NewConsumer(nil, store, nullLog())

			err := consumer.Process(context.Background(), []byte(testCase.payload))
			switch {
			case testCase.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(testCase.wantErr, service.ErrMalformedEvent):
				assert.ErrorIs(t, err, service.ErrMalformedEvent)
			default:
				assert.EqualError(t, err, testCase.wantErr.Error())
			}
		})
	}
}

func TestStartSkipsBadMessagesAndStops(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("Record", mock.Anything, mock.MatchedBy(func(e domain.AuditEvent) bool { return e.ID == "2" })).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &queueReader{
		cancel: cancel,
		messages: []kafka.Message{
			{Offset: 1, Value: []byte("garbage")},
			{Offset: 2, Value: []byte(`{"id":"2","restaurantId":"r1","logType":"DELETE","affectedEntity":"MENU_ITEM"}`)},
		},
	}

	runConsumer(t, service.NewConsumer(reader, store, nullLog()), ctx)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestStartRetriesStoreFailureBeforeCommitting(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("Record", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
	store.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &queueReader{
		cancel:   cancel,
		messages: []kafka.Message{{Offset: 7, Value: []byte(`{"id":"7","restaurantId":"r1","logType":"UPDATE","affectedEntity":"CATEGORY"}`)}},
	}
	consumer := service.NewConsumer(reader, store, nullLog())
	consumer.Backoff = time.Millisecond

	runConsumer(t, consumer, ctx)
	assert.Equal(t, []int64{7}, reader.committed)
}

func TestStartDoesNotCommitWhenStoppedMidRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := mocks.NewStoreInterface(t)
	store.On("Record", mock.Anything, mock.Anything).Run(func(mock.Arguments) { cancel() }).
		Return(errors.New("redis down")).Once()
	reader := &queueReader{
		cancel:   cancel,
		messages: []kafka.Message{{Offset: 3, Value: []byte(`{"id":"3","restaurantId":"r1","logType":"CREATE","affectedEntity":"MENU_ITEM"}`)}},
	}

	runConsumer(t, service.NewConsumer(reader, store, nullLog()), ctx)
	assert.Empty(t, reader.committed)
}

var (
	_ service.StoreInterface = (*mocks.StoreInterface)(nil)
	_ service.MessageReader  = (*queueReader)(nil)
)
