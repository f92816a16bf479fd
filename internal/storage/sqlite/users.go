package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/budgetbot/internal/models"
)

// UpsertUser inserts the user unless a row with the same ID exists.
func (s *SQLiteStore) UpsertUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt == 0 {
		user.CreatedAt = s.now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, display_name, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
		user.ID, user.DisplayName, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by Telegram ID.
// Returns nil, nil if the user has never interacted with the bot.
// Not part of storage.Store; tests use it to check registration.
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, display_name, created_at FROM users WHERE id = ?",
		id,
	).Scan(&user.ID, &user.DisplayName, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
