// Package conversation holds the per-user dialogue state of the bot.
//
// A Session is a small linear state machine. Transaction and debt entry each
// walk three states before committing. Category creation is the only nested
// flow: it can be entered as a detour from category choice, and Resume
// records where to go once it finishes.
package conversation

import (
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/budgetbot/internal/models"
)

// State names a step of a flow. The zero value is Idle.
type State string

const (
	Idle State = ""

	TxAmount      State = "tx:amount"
	TxCategory    State = "tx:category"
	TxDescription State = "tx:description"

	DebtPerson      State = "debt:person"
	DebtAmount      State = "debt:amount"
	DebtDescription State = "debt:description"

	CategoryName State = "category:name"
)

// States lists every non-idle state.
var States = []State{
	TxAmount, TxCategory, TxDescription,
	DebtPerson, DebtAmount, DebtDescription,
	CategoryName,
}

// Session is the transient data collected by one flow.
type Session struct {
	FlowID string `json:"flow_id"`
	State  State  `json:"state"`

	// Resume is the state entered when the current detour ends.
	// Idle means the flow ends with it.
	Resume State `json:"resume,omitempty"`

	TxKind       models.TransactionKind `json:"tx_kind,omitempty"`
	DebtKind     models.DebtKind        `json:"debt_kind,omitempty"`
	CategoryKind models.TransactionKind `json:"category_kind,omitempty"`

	Amount   float64 `json:"amount,omitempty"`
	Category string  `json:"category,omitempty"`
	Person   string  `json:"person,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewTransactionFlow starts income or expense entry at the amount step.
func NewTransactionFlow(kind models.TransactionKind) *Session {
	return &Session{FlowID: uuid.NewString(), State: TxAmount, TxKind: kind}
}

// NewDebtFlow starts debt entry at the counterparty step.
func NewDebtFlow(kind models.DebtKind) *Session {
	return &Session{FlowID: uuid.NewString(), State: DebtPerson, DebtKind: kind}
}

// NewCategoryFlow starts standalone category creation.
func NewCategoryFlow(kind models.TransactionKind) *Session {
	return &Session{FlowID: uuid.NewString(), State: CategoryName, CategoryKind: kind}
}

// Detour moves to state and remembers the current one in Resume.
func (s *Session) Detour(state State) {
	s.Resume = s.State
	s.State = state
}

// Return leaves a detour. It reports false when there was nothing to
// resume, which means the flow is over.
func (s *Session) Return() bool {
	s.State, s.Resume = s.Resume, Idle
	return s.State != Idle
}

// IsIdle reports whether no flow is active.
func (s *Session) IsIdle() bool {
	return s == nil || s.State == Idle
}
