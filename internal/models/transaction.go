package models

import "time"

// MaxAmount is the largest amount a transaction or debt may carry.
const MaxAmount = 1_000_000_000_000

// Transaction is an immutable income or expense record.
type Transaction struct {
	// ID is assigned by the store.
	ID int64

	UserID int64
	Kind   TransactionKind

	// Amount is always positive; the kind carries the sign.
	Amount float64

	// Category is the category name at the time of entry.
	Category string

	// Note is an optional free-text description. Empty means "not provided".
	Note string

	// CreatedAt is the Unix timestamp; filled by the store when zero.
	CreatedAt int64
}

// DateRange bounds a query by time. Zero Start or End leaves that side open.
// Both bounds are inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TransactionFilter narrows ListTransactions.
type TransactionFilter struct {
	// Kind limits results to one kind; empty matches both.
	Kind  TransactionKind
	Range DateRange

	// Limit caps the number of rows; zero means no limit.
	Limit int
}
