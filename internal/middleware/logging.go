package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/budgetbot/internal/router"
)

// Logging returns a middleware that logs every handled event.
// It logs the event kind, user ID, duration, and any error.
func Logging() Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx context.Context, ev router.Event) ([]router.Message, error) {
			start := time.Now()

			msgs, err := next(ctx, ev)

			duration := time.Since(start).Milliseconds()
			if err != nil {
				slog.Error("Update failed",
					"kind", kindOf(ev),
					"update_id", UpdateID(ctx),
					"user_id", ev.UserID,
					"error", err,
					"duration_ms", duration,
				)
			} else {
				slog.Info("Update ok",
					"kind", kindOf(ev),
					"update_id", UpdateID(ctx),
					"user_id", ev.UserID,
					"replies", len(msgs),
					"duration_ms", duration,
				)
			}

			return msgs, err
		}
	}
}
