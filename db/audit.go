// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/quickly-vote/events"
	"github.com/danielhkuo/quickly-vote/voting"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// NotificationRecord is one persisted notification.
type NotificationRecord struct {
	Seq       int64           `json:"seq"`
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

var _ events.Subscriber = (*AuditLog)(nil)

// AuditLog persists bus events to the notification table. Register it on the
// bus once per notification kind.
type AuditLog struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewAuditLog(db *sql.DB, logger *slog.Logger) *AuditLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLog{db: db, logger: logger}
}

func (a *AuditLog) Record(ctx context.Context, evt events.Event) (NotificationRecord, error) {
	payload, err := json.Marshal(evt.Data)
	if err != nil {
		return NotificationRecord{}, fmt.Errorf("failed to encode notification payload: %w", err)
	}

	rec := NotificationRecord{
		ID:        evt.ID.String(),
		Kind:      string(evt.Type),
		Payload:   payload,
		CreatedAt: evt.Timestamp.UTC(),
	}
	err = a.db.QueryRowContext(ctx, `
		INSERT INTO notification (id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING seq
	`, rec.ID, rec.Kind, string(payload), rec.CreatedAt).Scan(&rec.Seq)
	if err != nil {
		return NotificationRecord{}, fmt.Errorf("failed to insert notification: %w", err)
	}
	return rec, nil
}

// List returns records with seq greater than after, oldest first. limit is
// clamped to [1, MaxListLimit]; zero or negative means DefaultListLimit.
func (a *AuditLog) List(ctx context.Context, after int64, limit int) ([]NotificationRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := a.db.QueryContext(ctx, `
		SELECT seq, id, kind, payload, created_at
		FROM notification
		WHERE seq > $1
		ORDER BY seq
		LIMIT $2
	`, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	records := []NotificationRecord{}
	for rows.Next() {
		var (
			rec     NotificationRecord
			payload string
		)
		if err := rows.Scan(&rec.Seq, &rec.ID, &rec.Kind, &payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		rec.Payload = json.RawMessage(payload)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}
	return records, nil
}

// Deliver records evt. Write failures are logged, not returned, so the bus
// keeps the audit log subscribed.
func (a *AuditLog) Deliver(evt events.Event) error {
	if _, err := a.Record(context.Background(), evt); err != nil {
		a.logger.Error("failed to record notification", "kind", evt.Type, "id", evt.ID, "error", err)
	}
	return nil
}

func (a *AuditLog) Close() {}

// Subscribe registers the audit log for every session notification kind.
func (a *AuditLog) Subscribe(bus *events.EventBus) []events.SubscriberID {
	ids := make([]events.SubscriberID, 0, len(voting.NotificationKinds))
	for _, kind := range voting.NotificationKinds {
		ids = append(ids, bus.RegisterSubscriber(events.TypeOf(kind), a))
	}
	return ids
}
