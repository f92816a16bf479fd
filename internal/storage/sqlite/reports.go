package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/budgetbot/internal/models"
)

// GetBalance sums income and expense in the range. Empty sums are zero.
func (s *SQLiteStore) GetBalance(ctx context.Context, userID int64, r models.DateRange) (*models.Balance, error) {
	query := `SELECT
			COALESCE(SUM(CASE WHEN kind = 'income' THEN amount END), 0.0),
			COALESCE(SUM(CASE WHEN kind = 'expense' THEN amount END), 0.0)
		FROM transactions WHERE user_id = ?`
	args := []interface{}{userID}
	query, args = rangeClause(query, args, r)

	b := &models.Balance{}
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&b.Income, &b.Expense); err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	b.Balance = b.Income - b.Expense

	return b, nil
}

// GetCategoryStats groups transactions of one kind by category.
func (s *SQLiteStore) GetCategoryStats(ctx context.Context, userID int64, kind models.TransactionKind, r models.DateRange) ([]models.CategoryStat, error) {
	query := `SELECT category, SUM(amount) AS total, COUNT(*)
		FROM transactions WHERE user_id = ? AND kind = ?`
	args := []interface{}{userID, string(kind)}
	query, args = rangeClause(query, args, r)
	query += " GROUP BY category ORDER BY total DESC, category"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}
	defer rows.Close()

	var stats []models.CategoryStat
	for rows.Next() {
		var st models.CategoryStat
		if err := rows.Scan(&st.Category, &st.Total, &st.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category stat: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category stats: %w", err)
	}

	return stats, nil
}
