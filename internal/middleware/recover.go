package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/mmynk/budgetbot/internal/router"
)

// ErrPanic wraps a panic raised while handling an event.
var ErrPanic = errors.New("handler panicked")

// Recover returns a middleware that turns a panic in the chain into an
// error, so the update still gets a failure reply and polling continues.
// It belongs outermost.
func Recover() Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx context.Context, ev router.Event) (msgs []router.Message, err error) {
			defer func() {
				if p := recover(); p != nil {
					slog.Error("Update panicked",
						"kind", kindOf(ev),
						"user_id", ev.UserID,
						"panic", p,
						"stack", string(debug.Stack()),
					)
					msgs, err = nil, fmt.Errorf("%w: %v", ErrPanic, p)
				}
			}()
			return next(ctx, ev)
		}
	}
}
