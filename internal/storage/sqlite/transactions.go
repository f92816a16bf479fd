package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/budgetbot/internal/models"
)

// AddTransaction persists a new transaction.
func (s *SQLiteStore) AddTransaction(ctx context.Context, t *models.Transaction) error {
	if t.CreatedAt == 0 {
		t.CreatedAt = s.now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (user_id, kind, amount, category, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.UserID, string(t.Kind), t.Amount, t.Category, nullableNote(t.Note), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read transaction id: %w", err)
	}
	t.ID = id

	return nil
}

// ListTransactions retrieves the user's transactions matching filter.
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]*models.Transaction, error) {
	query := `SELECT id, user_id, kind, amount, category, note, created_at
		FROM transactions WHERE user_id = ?`
	args := []interface{}{userID}

	if filter.Kind != "" {
		query += " AND kind = ?"
		args = append(args, string(filter.Kind))
	}
	query, args = rangeClause(query, args, filter.Range)
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t := &models.Transaction{}
		var kind string
		var note sql.NullString

		if err := rows.Scan(&t.ID, &t.UserID, &kind, &t.Amount, &t.Category, &note, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		t.Kind = models.TransactionKind(kind)
		if note.Valid {
			t.Note = note.String
		}

		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
