package conversation

import "context"

// Store keeps one Session per user.
type Store interface {
	// Get returns the user's session, or nil if there is none or it expired.
	Get(ctx context.Context, userID int64) (*Session, error)

	// Save stores s and refreshes its expiry.
	Save(ctx context.Context, userID int64, s *Session) error

	// Delete drops the user's session. Deleting a missing session is fine.
	Delete(ctx context.Context, userID int64) error
}
