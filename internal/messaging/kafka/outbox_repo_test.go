package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOutboxDB(t *testing.T) (OutboxRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewOutboxRepository(db), mock
}

func pendingEvent() OutboxEvent {
	return OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "delivery",
		AggregateID:   uuid.New().String(),
		EventType:     "delivery_created",
		Topic:         "ops.delivery.lifecycle.v1",
		Payload:       []byte(`{"ticket":"T-0001"}`),
		Status:        EventPending,
	}
}

func TestOutboxRepo_Enqueue(t *testing.T) {
	repo, mock := newOutboxDB(t)
	event := pendingEvent()

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			event.ID, event.RequestID, event.AggregateType, event.AggregateID,
			event.EventType, event.Topic, event.Payload, EventPending,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Enqueue(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepo_Enqueue_RejectsMalformedEvent(t *testing.T) {
	repo, mock := newOutboxDB(t)

	event := pendingEvent()
	event.Payload = nil
	assert.Error(t, repo.Enqueue(context.Background(), event))

	event = pendingEvent()
	event.Status = "shipped"
	assert.Error(t, repo.Enqueue(context.Background(), event))

	// nothing reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepo_MarkFailed_SchedulesBackoff(t *testing.T) {
	repo, mock := newOutboxDB(t)
	event := pendingEvent()

	// first failure: retryBaseDelay << 1
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(event.ID, EventFailed, "broker unreachable", 20.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkFailed(context.Background(), event, "broker unreachable"))

	// a row that already failed many times stays at the cap
	event.RetryCount = 40
	capped := (retryBaseDelay << maxRetryShift).Seconds()
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(event.ID, EventFailed, "broker unreachable", capped).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkFailed(context.Background(), event, "broker unreachable"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepo_NextBatch(t *testing.T) {
	repo, mock := newOutboxDB(t)
	created := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(EventPending, EventFailed, 50).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "aggregate_type", "aggregate_id", "event_type", "topic",
			"payload", "status", "retry_count", "coalesce",
		}).AddRow(
			"e-1", "delivery", "d-1", "delivery_created", "ops.delivery.lifecycle.v1",
			[]byte(`{}`), EventFailed, 2, created,
		))

	batch, err := repo.NextBatch(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "e-1", batch[0].ID)
	assert.Equal(t, 2, batch[0].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
