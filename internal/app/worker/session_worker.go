package worker

import (
	"context"
	"log/slog"
	"time"

	"swiftie_sanctuary/internal/domain/session"
)

// SessionSweeper periodically deletes expired sessions from the store. The
// Postgres backend needs this because rows have no TTL of their own; the
// Redis backend expires keys itself and reports zero deletions.
type SessionSweeper struct {
	sessions session.Store
	interval time.Duration
	logger   *slog.Logger
}

func NewSessionSweeper(sessions session.Store, interval time.Duration, logger *slog.Logger) *SessionSweeper {
	return &SessionSweeper{sessions: sessions, interval: interval, logger: logger}
}

// Start runs the sweep loop until ctx is cancelled.
func (w *SessionSweeper) Start(ctx context.Context) {
	w.logger.Info("session sweeper started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("session sweeper stopping")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *SessionSweeper) sweep(ctx context.Context) {
	deleted, err := w.sessions.DeleteExpired(ctx)
	if err != nil {
		w.logger.Error("failed to delete expired sessions", "error", err)
		return
	}
	if deleted > 0 {
		w.logger.Info("deleted expired sessions", "count", deleted)
	}
}
