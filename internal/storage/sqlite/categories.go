package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/budgetbot/internal/models"
)

// SeedDefaultCategories inserts any default category the user is missing.
// All inserts run in one transaction.
func (s *SQLiteStore) SeedDefaultCategories(ctx context.Context, userID int64, defaults models.DefaultCategories) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := s.now().Unix()
	seed := func(kind models.TransactionKind, names []string) error {
		for _, name := range names {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO categories (user_id, kind, name, is_default, created_at)
				 VALUES (?, ?, ?, 1, ?)
				 ON CONFLICT (user_id, kind, name) DO NOTHING`,
				userID, string(kind), name, now,
			)
			if err != nil {
				return fmt.Errorf("failed to seed %s category %q: %w", kind, name, err)
			}
		}
		return nil
	}

	if err := seed(models.Expense, defaults.Expense); err != nil {
		return err
	}
	if err := seed(models.Income, defaults.Income); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListCategories returns the user's categories of one kind.
func (s *SQLiteStore) ListCategories(ctx context.Context, userID int64, kind models.TransactionKind) ([]*models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, kind, name, is_default, created_at
		 FROM categories WHERE user_id = ? AND kind = ?
		 ORDER BY is_default DESC, name`,
		userID, string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c := &models.Category{}
		var k string
		if err := rows.Scan(&c.ID, &c.UserID, &k, &c.Name, &c.IsDefault, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.Kind = models.TransactionKind(k)
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// AddCategory inserts a user-created category.
func (s *SQLiteStore) AddCategory(ctx context.Context, userID int64, kind models.TransactionKind, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (user_id, kind, name, is_default, created_at)
		 VALUES (?, ?, ?, 0, ?)
		 ON CONFLICT (user_id, kind, name) DO NOTHING`,
		userID, string(kind), name, s.now().Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert category: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check inserted category: %w", err)
	}

	return n > 0, nil
}

// DeleteCategory removes a non-default category.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, userID int64, kind models.TransactionKind, name string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM categories WHERE user_id = ? AND kind = ? AND name = ? AND is_default = 0",
		userID, string(kind), name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
