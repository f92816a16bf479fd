package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/budgetbot/internal/calculator"
	"github.com/mmynk/budgetbot/internal/models"
	"github.com/mmynk/budgetbot/internal/storage"
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidKind      = errors.New("unknown kind")
	ErrEmptyName        = errors.New("name must not be empty")
	ErrCategoryExists   = errors.New("category already exists")
	ErrReservedName     = errors.New("name is reserved")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDefaultCategory  = errors.New("default categories cannot be deleted")
	ErrDebtNotFound     = errors.New("debt not found")
	ErrUnknownPeriod    = errors.New("unknown report period")
)

// LedgerService is the bot's view of a user's finances. It validates
// input before it reaches the store.
type LedgerService struct {
	store    storage.Store
	defaults models.DefaultCategories
	loc      *time.Location
	now      func() time.Time
	reserved map[string]bool
}

// NewLedgerService creates a LedgerService. Report windows are computed in
// loc; nil means time.Local.
func NewLedgerService(store storage.Store, defaults models.DefaultCategories, loc *time.Location) *LedgerService {
	if loc == nil {
		loc = time.Local
	}
	return &LedgerService{store: store, defaults: defaults, loc: loc, now: time.Now, reserved: map[string]bool{}}
}

// ReserveNames marks labels that cannot become category names, such as
// keyboard buttons that sit next to the categories. Call it before serving.
func (s *LedgerService) ReserveNames(names ...string) {
	for _, n := range names {
		s.reserved[strings.TrimSpace(n)] = true
	}
}

// Location returns the zone used for report windows and timestamps.
func (s *LedgerService) Location() *time.Location {
	return s.loc
}

// Touch records the user if this is the first time we see them.
func (s *LedgerService) Touch(ctx context.Context, user *models.User) error {
	if err := s.store.UpsertUser(ctx, user); err != nil {
		slog.Error("UpsertUser failed", "user_id", user.ID, "error", err)
		return err
	}
	return nil
}

// Register records the user and seeds any missing default categories.
func (s *LedgerService) Register(ctx context.Context, user *models.User) error {
	if err := s.Touch(ctx, user); err != nil {
		return err
	}
	if err := s.store.SeedDefaultCategories(ctx, user.ID, s.defaults); err != nil {
		slog.Error("SeedDefaultCategories failed", "user_id", user.ID, "error", err)
		return err
	}

	slog.Info("User registered", "user_id", user.ID)
	return nil
}

// Categories lists the user's categories of one kind.
func (s *LedgerService) Categories(ctx context.Context, userID int64, kind models.TransactionKind) ([]*models.Category, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	return s.store.ListCategories(ctx, userID, kind)
}

// CreateCategory adds a user category. The name is used as given apart
// from trimming surrounding whitespace. Reserved labels and command-like
// names are rejected with ErrReservedName.
func (s *LedgerService) CreateCategory(ctx context.Context, userID int64, kind models.TransactionKind, name string) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if s.reserved[name] || strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}

	created, err := s.store.AddCategory(ctx, userID, kind, name)
	if err != nil {
		slog.Error("AddCategory failed", "user_id", userID, "kind", kind, "error", err)
		return err
	}
	if !created {
		return fmt.Errorf("%w: %q", ErrCategoryExists, name)
	}

	slog.Info("Category created", "user_id", userID, "kind", kind, "name", name)
	return nil
}

// RemoveCategory deletes a user-created category by id and returns it.
func (s *LedgerService) RemoveCategory(ctx context.Context, userID int64, kind models.TransactionKind, categoryID int64) (*models.Category, error) {
	cats, err := s.Categories(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	var target *models.Category
	for _, c := range cats {
		if c.ID == categoryID {
			target = c
			break
		}
	}
	if target == nil {
		return nil, ErrCategoryNotFound
	}
	if target.IsDefault {
		return nil, ErrDefaultCategory
	}

	if err := s.store.DeleteCategory(ctx, userID, kind, target.Name); err != nil {
		slog.Error("DeleteCategory failed", "user_id", userID, "category_id", categoryID, "error", err)
		return nil, err
	}

	slog.Info("Category deleted", "user_id", userID, "kind", kind, "name", target.Name)
	return target, nil
}

// validAmount also rejects NaN, which fails every comparison.
func validAmount(a float64) bool {
	return a > 0 && a <= models.MaxAmount
}

// RecordTransaction validates and stores t.
func (s *LedgerService) RecordTransaction(ctx context.Context, t *models.Transaction) error {
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if !validAmount(t.Amount) {
		return ErrInvalidAmount
	}
	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		return ErrEmptyName
	}

	if err := s.store.AddTransaction(ctx, t); err != nil {
		slog.Error("AddTransaction failed", "user_id", t.UserID, "error", err)
		return err
	}

	slog.Info("Transaction recorded",
		"user_id", t.UserID,
		"transaction_id", t.ID,
		"kind", t.Kind,
		"category", t.Category,
	)
	return nil
}

// RecordDebt validates and stores d as an unpaid debt.
func (s *LedgerService) RecordDebt(ctx context.Context, d *models.Debt) error {
	if !d.Kind.Valid() {
		return ErrInvalidKind
	}
	if !validAmount(d.Amount) {
		return ErrInvalidAmount
	}
	d.Counterparty = strings.TrimSpace(d.Counterparty)
	if d.Counterparty == "" {
		return ErrEmptyName
	}

	if err := s.store.AddDebt(ctx, d); err != nil {
		slog.Error("AddDebt failed", "user_id", d.UserID, "error", err)
		return err
	}

	slog.Info("Debt recorded", "user_id", d.UserID, "debt_id", d.ID, "kind", d.Kind)
	return nil
}

// CloseDebt marks one of the user's unpaid debts as paid and returns it.
func (s *LedgerService) CloseDebt(ctx context.Context, userID, debtID int64) (*models.Debt, error) {
	debts, err := s.store.ListDebts(ctx, userID, models.UnpaidDebts)
	if err != nil {
		slog.Error("ListDebts failed", "user_id", userID, "error", err)
		return nil, err
	}

	var debt *models.Debt
	for _, d := range debts {
		if d.ID == debtID {
			debt = d
			break
		}
	}
	if debt == nil {
		return nil, ErrDebtNotFound
	}

	closed, err := s.store.MarkDebtPaid(ctx, userID, debtID)
	if err != nil {
		slog.Error("MarkDebtPaid failed", "user_id", userID, "debt_id", debtID, "error", err)
		return nil, err
	}
	if !closed {
		return nil, ErrDebtNotFound
	}

	debt.Paid = true
	slog.Info("Debt closed", "user_id", userID, "debt_id", debtID)
	return debt, nil
}

// OpenDebts lists unpaid debts, newest first. An empty kind means all.
func (s *LedgerService) OpenDebts(ctx context.Context, userID int64, kind models.DebtKind) ([]*models.Debt, error) {
	if kind != "" && !kind.Valid() {
		return nil, ErrInvalidKind
	}

	debts, err := s.store.ListDebts(ctx, userID, models.UnpaidDebts)
	if err != nil {
		slog.Error("ListDebts failed", "user_id", userID, "error", err)
		return nil, err
	}
	if kind == "" {
		return debts, nil
	}

	filtered := debts[:0]
	for _, d := range debts {
		if d.Kind == kind {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// Balance returns the all-time balance.
func (s *LedgerService) Balance(ctx context.Context, userID int64) (*models.Balance, error) {
	return s.store.GetBalance(ctx, userID, models.DateRange{})
}

// Report builds the balance and category breakdowns for period.
func (s *LedgerService) Report(ctx context.Context, userID int64, period models.ReportPeriod) (*models.Report, error) {
	r, err := calculator.RangeFor(period, s.now().In(s.loc))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}

	balance, err := s.store.GetBalance(ctx, userID, r)
	if err != nil {
		return nil, err
	}
	income, err := s.store.GetCategoryStats(ctx, userID, models.Income, r)
	if err != nil {
		return nil, err
	}
	expense, err := s.store.GetCategoryStats(ctx, userID, models.Expense, r)
	if err != nil {
		return nil, err
	}

	slog.Debug("Report built", "user_id", userID, "period", period, "income_categories", len(income), "expense_categories", len(expense))

	return &models.Report{
		Period:  period,
		Balance: *balance,
		Income:  income,
		Expense: expense,
	}, nil
}

// History returns the user's latest transactions, newest first.
func (s *LedgerService) History(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error) {
	return s.store.ListTransactions(ctx, userID, models.TransactionFilter{Limit: limit})
}
