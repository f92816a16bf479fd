package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/budgetbot/internal/models"
)

// AddDebt persists a new unpaid debt.
func (s *SQLiteStore) AddDebt(ctx context.Context, debt *models.Debt) error {
	if debt.CreatedAt == 0 {
		debt.CreatedAt = s.now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO debts (user_id, kind, counterparty, amount, note, is_paid, created_at)
		 VALUES (?, ?, ?, ?, ?, 0, ?)`,
		debt.UserID, string(debt.Kind), debt.Counterparty, debt.Amount, nullableNote(debt.Note), debt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read debt id: %w", err)
	}
	debt.ID = id
	debt.Paid = false
	debt.PaidAt = 0

	return nil
}

// ListDebts retrieves the user's debts filtered by paid state.
func (s *SQLiteStore) ListDebts(ctx context.Context, userID int64, filter models.PaidFilter) ([]*models.Debt, error) {
	query := `SELECT id, user_id, kind, counterparty, amount, note, is_paid, created_at, paid_at
		FROM debts WHERE user_id = ?`
	args := []interface{}{userID}

	switch filter {
	case models.UnpaidDebts:
		query += " AND is_paid = 0"
	case models.PaidDebts:
		query += " AND is_paid = 1"
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []*models.Debt
	for rows.Next() {
		debt := &models.Debt{}
		var kind string
		var note sql.NullString
		var paidAt sql.NullInt64

		if err := rows.Scan(&debt.ID, &debt.UserID, &kind, &debt.Counterparty, &debt.Amount,
			&note, &debt.Paid, &debt.CreatedAt, &paidAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}

		debt.Kind = models.DebtKind(kind)
		if note.Valid {
			debt.Note = note.String
		}
		if paidAt.Valid {
			debt.PaidAt = paidAt.Int64
		}

		debts = append(debts, debt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}

	return debts, nil
}

// MarkDebtPaid closes an unpaid debt that belongs to userID.
func (s *SQLiteStore) MarkDebtPaid(ctx context.Context, userID, debtID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE debts SET is_paid = 1, paid_at = ? WHERE id = ? AND user_id = ? AND is_paid = 0",
		s.now().Unix(), debtID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark debt paid: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check closed debt: %w", err)
	}

	return n > 0, nil
}
