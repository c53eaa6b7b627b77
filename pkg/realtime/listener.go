package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotifyChannel is the Postgres NOTIFY channel row-change triggers write
// to. Payloads are JSON: {"table": ..., "type": ..., "row": {...}}.
const NotifyChannel = "row_changes"

// Listener bridges Postgres LISTEN/NOTIFY into a Hub. It holds one
// dedicated connection from the pool for the lifetime of Run.
type Listener struct {
	pool *pgxpool.Pool
	hub  *Hub
	log  *slog.Logger
}

// NewListener creates a Listener. Pool and hub are required.
func NewListener(pool *pgxpool.Pool, hub *Hub, log *slog.Logger) *Listener {
	if pool == nil || hub == nil {
		panic("realtime: pool and hub are required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Listener{pool: pool, hub: hub, log: log}
}

// Run listens for notifications until ctx is cancelled. Malformed payloads
// are logged and skipped; connection errors end the loop.
func (l *Listener) Run(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+NotifyChannel); err != nil {
		return fmt.Errorf("listen on %s: %w", NotifyChannel, err)
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for notification: %w", err)
		}

		var e Event
		if err := json.Unmarshal([]byte(notification.Payload), &e); err != nil {
			l.log.WarnContext(ctx, "dropping malformed change notification", slog.Any("error", err))
			continue
		}
		if e.Table == "" {
			l.log.WarnContext(ctx, "dropping change notification without table")
			continue
		}
		_ = l.hub.Publish(ctx, e)
	}
}
