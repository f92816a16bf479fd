package models

// DebtKind tells who owes whom.
type DebtKind string

const (
	// Owe means the user owes the counterparty.
	Owe DebtKind = "owe"
	// Lent means the counterparty owes the user.
	Lent DebtKind = "lent"
)

// Valid reports whether k is one of the known kinds.
func (k DebtKind) Valid() bool {
	return k == Owe || k == Lent
}

// Debt is an informal debt between the user and a named person.
// A debt starts unpaid and can be closed exactly once.
type Debt struct {
	ID     int64
	UserID int64
	Kind   DebtKind

	// Counterparty is a free-text name; it does not reference a User.
	Counterparty string

	Amount float64
	Note   string

	CreatedAt int64

	Paid bool

	// PaidAt is the Unix timestamp of closing; zero while unpaid.
	PaidAt int64
}

// PaidFilter selects debts by their paid flag.
type PaidFilter int

const (
	AnyDebts PaidFilter = iota
	UnpaidDebts
	PaidDebts
)
