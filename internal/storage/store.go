// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/budgetbot/internal/models"
)

// Store defines the persistence operations of the ledger.
// Every operation is scoped by the owning user and runs as a single
// short-lived statement unless noted otherwise.
type Store interface {
	// UpsertUser inserts the user if absent. Existing rows are left unchanged.
	UpsertUser(ctx context.Context, user *models.User) error

	// SeedDefaultCategories inserts the default categories that are missing.
	// Calling it repeatedly never creates duplicates.
	SeedDefaultCategories(ctx context.Context, userID int64, defaults models.DefaultCategories) error

	// ListCategories returns the user's categories of one kind,
	// defaults first, then ordered by name.
	ListCategories(ctx context.Context, userID int64, kind models.TransactionKind) ([]*models.Category, error)

	// AddCategory creates a non-default category.
	// It returns false, without an error, if the name is already taken.
	AddCategory(ctx context.Context, userID int64, kind models.TransactionKind, name string) (bool, error)

	// DeleteCategory removes a user-created category.
	// Missing and default categories are ignored.
	DeleteCategory(ctx context.Context, userID int64, kind models.TransactionKind, name string) error

	// AddTransaction persists a transaction and assigns its ID.
	AddTransaction(ctx context.Context, tx *models.Transaction) error

	// AddDebt persists an unpaid debt and assigns its ID.
	AddDebt(ctx context.Context, debt *models.Debt) error

	// ListTransactions returns matching transactions, newest first.
	ListTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]*models.Transaction, error)

	// ListDebts returns the user's debts, newest first.
	ListDebts(ctx context.Context, userID int64, filter models.PaidFilter) ([]*models.Debt, error)

	// MarkDebtPaid closes an unpaid debt owned by userID.
	// It returns false if no such unpaid debt exists.
	MarkDebtPaid(ctx context.Context, userID, debtID int64) (bool, error)

	// GetBalance sums income and expense inside the range.
	GetBalance(ctx context.Context, userID int64, r models.DateRange) (*models.Balance, error)

	// GetCategoryStats groups one kind of transactions by category,
	// largest total first.
	GetCategoryStats(ctx context.Context, userID int64, kind models.TransactionKind, r models.DateRange) ([]models.CategoryStat, error)

	// Close releases any resources held by the store.
	Close() error
}
