package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mmynk/budgetbot/internal/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{name: "integer", input: "1000", want: 1000},
		{name: "dot decimal", input: "1500.50", want: 1500.5},
		{name: "comma decimal", input: "1500,50", want: 1500.5},
		{name: "surrounding spaces", input: "  42 ", want: 42},
		{name: "rounds to cents", input: "10.005", want: 10.01},
		{name: "letters", input: "abc", wantErr: ErrInvalidAmount},
		{name: "empty", input: "", wantErr: ErrInvalidAmount},
		{name: "zero", input: "0", wantErr: ErrNonPositiveAmount},
		{name: "negative", input: "-5", wantErr: ErrNonPositiveAmount},
		{name: "rounds to zero", input: "0.001", wantErr: ErrNonPositiveAmount},
		{name: "huge exponent", input: "1e400", wantErr: ErrInvalidAmount},
		{name: "small exponent", input: "1e5", wantErr: ErrInvalidAmount},
		{name: "giant exponent", input: "1e2000000000", wantErr: ErrInvalidAmount},
		{name: "infinity", input: "Inf", wantErr: ErrInvalidAmount},
		{name: "not a number", input: "NaN", wantErr: ErrInvalidAmount},
		{name: "two separators", input: "1.000,50", wantErr: ErrInvalidAmount},
		{name: "above maximum", input: "1000000000000.01", wantErr: ErrInvalidAmount},
		{name: "at maximum", input: "1000000000000", want: 1e12},
		{name: "too many digits", input: "1234567890123456", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseAmount(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSessionDetour(t *testing.T) {
	t.Run("detour from category choice resumes there", func(t *testing.T) {
		s := NewTransactionFlow(models.Expense)
		if s.FlowID == "" {
			t.Fatal("Expected FlowID to be set")
		}
		s.State = TxCategory

		s.Detour(CategoryName)
		if s.State != CategoryName || s.Resume != TxCategory {
			t.Fatalf("after Detour: state=%q resume=%q", s.State, s.Resume)
		}

		if !s.Return() {
			t.Fatal("Return() = false, want true")
		}
		if s.State != TxCategory || s.Resume != Idle {
			t.Errorf("after Return: state=%q resume=%q", s.State, s.Resume)
		}
	})

	t.Run("standalone category flow ends on return", func(t *testing.T) {
		s := NewCategoryFlow(models.Income)
		if s.Return() {
			t.Error("Return() = true, want false")
		}
		if !s.IsIdle() {
			t.Errorf("state = %q, want idle", s.State)
		}
	})

	t.Run("nil session is idle", func(t *testing.T) {
		var s *Session
		if !s.IsIdle() {
			t.Error("nil session should be idle")
		}
	})
}

// testStores runs the shared Store contract against every backend.
func testStores(t *testing.T) map[string]Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(time.Minute),
		"redis":  NewRedisStore(client, time.Minute),
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := store.Get(ctx, 7)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got != nil {
				t.Fatalf("Expected nil session, got %+v", got)
			}

			s := NewDebtFlow(models.Lent)
			s.Person = "Антон"
			s.State = DebtAmount
			if err := store.Save(ctx, 7, s); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err = store.Get(ctx, 7)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got == nil {
				t.Fatal("Expected session after Save")
			}
			if got.FlowID != s.FlowID || got.State != DebtAmount || got.Person != "Антон" || got.DebtKind != models.Lent {
				t.Errorf("round-trip mismatch: got %+v, want %+v", got, s)
			}

			if other, _ := store.Get(ctx, 8); other != nil {
				t.Error("Sessions must be keyed per user")
			}

			if err := store.Delete(ctx, 7); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if got, _ := store.Get(ctx, 7); got != nil {
				t.Errorf("Expected nil after Delete, got %+v", got)
			}
			if err := store.Delete(ctx, 7); err != nil {
				t.Errorf("Delete of missing session failed: %v", err)
			}
		})
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore(30 * time.Minute)
	store.now = func() time.Time { return now }

	if err := store.Save(ctx, 1, NewTransactionFlow(models.Income)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, 2, NewTransactionFlow(models.Expense)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	now = now.Add(20 * time.Minute)
	if got, _ := store.Get(ctx, 1); got == nil {
		t.Fatal("Session evicted before TTL")
	}

	now = now.Add(15 * time.Minute)
	if got, _ := store.Get(ctx, 1); got != nil {
		t.Error("Expected session 1 to expire on Get")
	}
	if n := store.Sweep(); n != 1 {
		t.Errorf("Sweep() = %d, want 1", n)
	}
	if n := store.Sweep(); n != 0 {
		t.Errorf("second Sweep() = %d, want 0", n)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	s := NewTransactionFlow(models.Income)
	store.Save(ctx, 1, s)
	s.State = TxDescription

	got, _ := store.Get(ctx, 1)
	if got.State != TxAmount {
		t.Errorf("stored session changed through caller pointer: %q", got.State)
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStore(client, 30*time.Minute)
	if err := store.Save(ctx, 1, NewTransactionFlow(models.Income)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !mr.Exists("budgetbot:session:1") {
		t.Fatal("Expected session key in redis")
	}

	mr.FastForward(31 * time.Minute)
	got, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected session to expire, got %+v", got)
	}
}

func TestMemoryStoreJanitor(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	store.Save(context.Background(), 1, NewTransactionFlow(models.Income))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for {
		store.mu.Lock()
		n := len(store.sessions)
		store.mu.Unlock()
		if n == 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Janitor did not evict the session")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	<-done
}
