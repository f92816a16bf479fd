package service

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/budgetbot/internal/models"
	"github.com/mmynk/budgetbot/internal/storage/sqlite"
)

var testDefaults = models.DefaultCategories{
	Income:  []string{"Зарплата", "Другое"},
	Expense: []string{"Продукты", "Другое"},
}

// setupLedger creates a LedgerService over a temp database with one
// registered user (id 1).
func setupLedger(t *testing.T) *LedgerService {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
		os.Remove(tmpFile.Name())
	})

	svc := NewLedgerService(store, testDefaults, time.UTC)
	if err := svc.Register(context.Background(), &models.User{ID: 1, DisplayName: "alice"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return svc
}

func TestRegister(t *testing.T) {
	svc := setupLedger(t)
	ctx := context.Background()

	if err := svc.Register(ctx, &models.User{ID: 1, DisplayName: "alice"}); err != nil {
		t.Fatalf("second Register failed: %v", err)
	}

	cats, err := svc.Categories(ctx, 1, models.Expense)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(cats) != len(testDefaults.Expense) {
		t.Errorf("expense categories = %d, want %d", len(cats), len(testDefaults.Expense))
	}

	if _, err := svc.Categories(ctx, 1, "savings"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("Categories with bad kind error = %v, want ErrInvalidKind", err)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	svc := setupLedger(t)
	ctx := context.Background()

	t.Run("CreateCategory trims and rejects duplicates", func(t *testing.T) {
		if err := svc.CreateCategory(ctx, 1, models.Expense, "  Кафе "); err != nil {
			t.Fatalf("CreateCategory failed: %v", err)
		}
		err := svc.CreateCategory(ctx, 1, models.Expense, "Кафе")
		if !errors.Is(err, ErrCategoryExists) {
			t.Errorf("duplicate error = %v, want ErrCategoryExists", err)
		}
	})

	t.Run("CreateCategory rejects empty names", func(t *testing.T) {
		if err := svc.CreateCategory(ctx, 1, models.Income, "   "); !errors.Is(err, ErrEmptyName) {
			t.Errorf("error = %v, want ErrEmptyName", err)
		}
	})

	t.Run("CreateCategory rejects reserved names", func(t *testing.T) {
		svc.ReserveNames("❌ Отмена", "⏭ Пропустить")
		for _, name := range []string{"❌ Отмена", " ⏭ Пропустить ", "/start", "/anything"} {
			if err := svc.CreateCategory(ctx, 1, models.Expense, name); !errors.Is(err, ErrReservedName) {
				t.Errorf("CreateCategory(%q) error = %v, want ErrReservedName", name, err)
			}
		}
		cats, err := svc.Categories(ctx, 1, models.Expense)
		if err != nil {
			t.Fatalf("Categories failed: %v", err)
		}
		for _, c := range cats {
			if c.Name == "❌ Отмена" || strings.HasPrefix(c.Name, "/") {
				t.Errorf("reserved name stored: %q", c.Name)
			}
		}
	})

	t.Run("RemoveCategory refuses defaults", func(t *testing.T) {
		cats, _ := svc.Categories(ctx, 1, models.Expense)
		var defaultID int64
		for _, c := range cats {
			if c.IsDefault {
				defaultID = c.ID
				break
			}
		}
		if _, err := svc.RemoveCategory(ctx, 1, models.Expense, defaultID); !errors.Is(err, ErrDefaultCategory) {
			t.Errorf("error = %v, want ErrDefaultCategory", err)
		}
	})

	t.Run("RemoveCategory deletes custom categories", func(t *testing.T) {
		cats, _ := svc.Categories(ctx, 1, models.Expense)
		var id int64
		for _, c := range cats {
			if c.Name == "Кафе" {
				id = c.ID
			}
		}
		removed, err := svc.RemoveCategory(ctx, 1, models.Expense, id)
		if err != nil {
			t.Fatalf("RemoveCategory failed: %v", err)
		}
		if removed.Name != "Кафе" {
			t.Errorf("removed = %q, want Кафе", removed.Name)
		}

		if _, err := svc.RemoveCategory(ctx, 1, models.Expense, id); !errors.Is(err, ErrCategoryNotFound) {
			t.Errorf("second remove error = %v, want ErrCategoryNotFound", err)
		}
	})
}

func TestRecordTransaction(t *testing.T) {
	svc := setupLedger(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		tx      models.Transaction
		wantErr error
	}{
		{name: "valid income", tx: models.Transaction{UserID: 1, Kind: models.Income, Amount: 1500.5, Category: "Зарплата"}},
		{name: "zero amount", tx: models.Transaction{UserID: 1, Kind: models.Income, Amount: 0, Category: "Зарплата"}, wantErr: ErrInvalidAmount},
		{name: "infinite amount", tx: models.Transaction{UserID: 1, Kind: models.Income, Amount: math.Inf(1), Category: "Зарплата"}, wantErr: ErrInvalidAmount},
		{name: "NaN amount", tx: models.Transaction{UserID: 1, Kind: models.Income, Amount: math.NaN(), Category: "Зарплата"}, wantErr: ErrInvalidAmount},
		{name: "above maximum", tx: models.Transaction{UserID: 1, Kind: models.Income, Amount: models.MaxAmount + 1, Category: "Зарплата"}, wantErr: ErrInvalidAmount},
		{name: "bad kind", tx: models.Transaction{UserID: 1, Kind: "gift", Amount: 5, Category: "Другое"}, wantErr: ErrInvalidKind},
		{name: "empty category", tx: models.Transaction{UserID: 1, Kind: models.Expense, Amount: 5, Category: " "}, wantErr: ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := tt.tx
			err := svc.RecordTransaction(ctx, &tx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RecordTransaction() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && tx.ID == 0 {
				t.Error("Expected transaction ID to be set")
			}
		})
	}

	history, err := svc.History(ctx, 1, 10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history = %d, want 1 (only the valid transaction)", len(history))
	}
}

func TestDebts(t *testing.T) {
	svc := setupLedger(t)
	ctx := context.Background()
	if err := svc.Register(ctx, &models.User{ID: 2, DisplayName: "bob"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	lent := &models.Debt{UserID: 1, Kind: models.Lent, Counterparty: "Антон", Amount: 200}
	owe := &models.Debt{UserID: 1, Kind: models.Owe, Counterparty: "Маша", Amount: 50}
	for _, d := range []*models.Debt{lent, owe} {
		if err := svc.RecordDebt(ctx, d); err != nil {
			t.Fatalf("RecordDebt failed: %v", err)
		}
	}

	t.Run("OpenDebts filters by kind", func(t *testing.T) {
		all, err := svc.OpenDebts(ctx, 1, "")
		if err != nil {
			t.Fatalf("OpenDebts failed: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("all debts = %d, want 2", len(all))
		}

		lentOnly, _ := svc.OpenDebts(ctx, 1, models.Lent)
		if len(lentOnly) != 1 || lentOnly[0].Counterparty != "Антон" {
			t.Errorf("lent debts = %+v, want only Антон", lentOnly)
		}
	})

	t.Run("CloseDebt refuses other users", func(t *testing.T) {
		if _, err := svc.CloseDebt(ctx, 2, lent.ID); !errors.Is(err, ErrDebtNotFound) {
			t.Errorf("error = %v, want ErrDebtNotFound", err)
		}
	})

	t.Run("CloseDebt closes once", func(t *testing.T) {
		closed, err := svc.CloseDebt(ctx, 1, lent.ID)
		if err != nil {
			t.Fatalf("CloseDebt failed: %v", err)
		}
		if !closed.Paid || closed.Counterparty != "Антон" {
			t.Errorf("closed = %+v", closed)
		}

		if _, err := svc.CloseDebt(ctx, 1, lent.ID); !errors.Is(err, ErrDebtNotFound) {
			t.Errorf("second close error = %v, want ErrDebtNotFound", err)
		}

		open, _ := svc.OpenDebts(ctx, 1, "")
		if len(open) != 1 || open[0].ID != owe.ID {
			t.Errorf("open debts = %+v, want only %d", open, owe.ID)
		}
	})

	t.Run("RecordDebt validates input", func(t *testing.T) {
		err := svc.RecordDebt(ctx, &models.Debt{UserID: 1, Kind: models.Owe, Counterparty: "", Amount: 5})
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("error = %v, want ErrEmptyName", err)
		}
		err = svc.RecordDebt(ctx, &models.Debt{UserID: 1, Kind: models.Owe, Counterparty: "X", Amount: -1})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("error = %v, want ErrInvalidAmount", err)
		}
	})
}

func TestReport(t *testing.T) {
	svc := setupLedger(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	record := func(kind models.TransactionKind, amount float64, category string, at time.Time) {
		t.Helper()
		tx := &models.Transaction{UserID: 1, Kind: kind, Amount: amount, Category: category, CreatedAt: at.Unix()}
		if err := svc.RecordTransaction(ctx, tx); err != nil {
			t.Fatalf("RecordTransaction failed: %v", err)
		}
	}
	record(models.Income, 1000, "Зарплата", now.Add(-20*24*time.Hour))
	record(models.Expense, 300, "Продукты", now.Add(-3*24*time.Hour))
	record(models.Expense, 100, "Другое", now.Add(-time.Hour))

	tests := []struct {
		period      models.ReportPeriod
		wantIncome  float64
		wantExpense float64
	}{
		{period: models.PeriodToday, wantIncome: 0, wantExpense: 100},
		{period: models.PeriodWeek, wantIncome: 0, wantExpense: 400},
		{period: models.PeriodMonth, wantIncome: 1000, wantExpense: 400},
		{period: models.PeriodAll, wantIncome: 1000, wantExpense: 400},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			r, err := svc.Report(ctx, 1, tt.period)
			if err != nil {
				t.Fatalf("Report failed: %v", err)
			}
			if r.Balance.Income != tt.wantIncome || r.Balance.Expense != tt.wantExpense {
				t.Errorf("balance = %+v, want income %v expense %v", r.Balance, tt.wantIncome, tt.wantExpense)
			}
			if r.Balance.Balance != r.Balance.Income-r.Balance.Expense {
				t.Errorf("balance identity broken: %+v", r.Balance)
			}
		})
	}

	if _, err := svc.Report(ctx, 1, "year"); !errors.Is(err, ErrUnknownPeriod) {
		t.Errorf("error = %v, want ErrUnknownPeriod", err)
	}

	bal, err := svc.Balance(ctx, 1)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if bal.Balance != 600 {
		t.Errorf("all-time balance = %v, want 600", bal.Balance)
	}
}
