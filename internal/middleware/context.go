// Package middleware wraps router handlers with cross-cutting concerns.
package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmynk/budgetbot/internal/router"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UpdateIDKey is the context key for the per-update correlation id.
	UpdateIDKey contextKey = "update_id"
	// UserIDKey is the context key for the Telegram user id.
	UserIDKey contextKey = "user_id"
)

// Middleware decorates a handler.
type Middleware func(next router.HandlerFunc) router.HandlerFunc

// Chain applies mws so that the first one is the outermost.
func Chain(h router.HandlerFunc, mws ...Middleware) router.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// UpdateID extracts the correlation id from the context.
// Returns empty string if not found.
func UpdateID(ctx context.Context) string {
	id, _ := ctx.Value(UpdateIDKey).(string)
	return id
}

// UserID extracts the user id from the context.
// Returns 0 if not found.
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(UserIDKey).(int64)
	return id
}

// Correlate stores a fresh update id and the event's user id in the context.
func Correlate() Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx context.Context, ev router.Event) ([]router.Message, error) {
			ctx = context.WithValue(ctx, UpdateIDKey, uuid.NewString())
			ctx = context.WithValue(ctx, UserIDKey, ev.UserID)
			return next(ctx, ev)
		}
	}
}

// kindOf labels an event for logs and metrics.
func kindOf(ev router.Event) string {
	switch {
	case ev.IsCallback():
		return "callback"
	case router.Lookup(ev.Text) != router.ActionNone:
		return "command"
	default:
		return "text"
	}
}
