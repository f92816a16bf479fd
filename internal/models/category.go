package models

// TransactionKind discriminates income from expense.
// Categories share the same discriminator.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// Valid reports whether k is one of the known kinds.
func (k TransactionKind) Valid() bool {
	return k == Income || k == Expense
}

// Category is a named bucket for transactions of one kind.
// (UserID, Kind, Name) is unique; names are compared as-is.
type Category struct {
	ID     int64
	UserID int64
	Kind   TransactionKind
	Name   string

	// IsDefault marks categories seeded at registration. They cannot be deleted.
	IsDefault bool

	CreatedAt int64
}

// DefaultCategories lists the category names seeded for every new user.
type DefaultCategories struct {
	Income  []string
	Expense []string
}
