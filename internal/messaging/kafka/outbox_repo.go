package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Outbox row states. Failed rows stay eligible for the drain until their
// backoff window elapses, so "failed" means "retry later", not "dead".
const (
	EventPending = "pending"
	EventSent    = "sent"
	EventFailed  = "failed"
)

const (
	retryBaseDelay = 10 * time.Second
	maxRetryShift  = 5 // caps the backoff at retryBaseDelay << 5
	maxReasonLen   = 500
)

// OutboxEvent is one delivery lifecycle event persisted next to the row
// that produced it. The drain worker owns everything past Enqueue.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

// validate guards Enqueue; a malformed row would wedge the drain loop.
func (e OutboxEvent) validate() error {
	if e.ID == "" {
		return errors.New("outbox event id is empty")
	}
	if e.Topic == "" {
		return errors.New("outbox event topic is empty")
	}
	if len(e.Payload) == 0 {
		return errors.New("outbox event payload is empty")
	}
	switch e.Status {
	case EventPending, EventSent, EventFailed:
		return nil
	}
	return fmt.Errorf("unknown outbox status %q", e.Status)
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Enqueue(ctx context.Context, event OutboxEvent) error
	NextBatch(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, event OutboxEvent, reason string) error
}

type outboxRepo struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepo{db: db}
}

func (r *outboxRepo) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepo{db: r.db, tx: tx}
}

// Enqueue writes the event in the caller's transaction so it commits or
// rolls back together with the delivery row.
func (r *outboxRepo) Enqueue(ctx context.Context, event OutboxEvent) error {
	if err := event.validate(); err != nil {
		return err
	}

	const query = `
        INSERT INTO outbox_events
            (id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

// NextBatch returns publishable rows in commit order, skipping failed rows
// whose backoff has not elapsed yet.
func (r *outboxRepo) NextBatch(ctx context.Context, limit int) ([]OutboxEvent, error) {
	const query = `
        SELECT id::text, aggregate_type, aggregate_id::text, event_type, topic,
               payload, status, retry_count, COALESCE(next_retry_at, created_at)
        FROM outbox_events
        WHERE status IN ($1, $2)
          AND (next_retry_at IS NULL OR next_retry_at <= NOW())
        ORDER BY created_at ASC
        LIMIT $3
    `
	rows, err := r.db.QueryContext(ctx, query, EventPending, EventFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batch := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType,
			&e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt,
		); err != nil {
			return nil, err
		}
		batch = append(batch, e)
	}
	return batch, rows.Err()
}

func (r *outboxRepo) MarkSent(ctx context.Context, id string) error {
	const query = `
        UPDATE outbox_events
        SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id, EventSent)
	return err
}

// MarkFailed records the publish error and schedules the next attempt with
// a capped exponential backoff computed from the attempt number.
func (r *outboxRepo) MarkFailed(ctx context.Context, event OutboxEvent, reason string) error {
	if len(reason) > maxReasonLen {
		reason = reason[:maxReasonLen]
	}
	delay := backoffFor(event.RetryCount + 1)

	const query = `
        UPDATE outbox_events
        SET status = $2,
            retry_count = retry_count + 1,
            error_message = $3,
            next_retry_at = NOW() + make_interval(secs => $4),
            updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, event.ID, EventFailed, reason, delay.Seconds())
	return err
}

func backoffFor(attempt int) time.Duration {
	shift := attempt
	if shift > maxRetryShift {
		shift = maxRetryShift
	}
	return retryBaseDelay << shift
}

func (r *outboxRepo) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
