package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/budgetbot/internal/conversation"
	"github.com/mmynk/budgetbot/internal/format"
	"github.com/mmynk/budgetbot/internal/models"
	"github.com/mmynk/budgetbot/internal/service"
)

func (r *Router) registerStates() {
	r.states = map[conversation.State]stateHandler{
		conversation.TxAmount:        r.txAmount,
		conversation.TxCategory:      r.txCategory,
		conversation.TxDescription:   r.txDescription,
		conversation.DebtPerson:      r.debtPerson,
		conversation.DebtAmount:      r.debtAmount,
		conversation.DebtDescription: r.debtDescription,
		conversation.CategoryName:    r.categoryName,
	}
}

// amountRetry maps a parse failure to its re-prompt. formatMsg is used for
// malformed input.
func amountRetry(err error, formatMsg string) []Message {
	if errors.Is(err, conversation.ErrNonPositiveAmount) {
		return reply(msgAmountPositive, nil)
	}
	return reply(formatMsg, nil)
}

func (r *Router) txAmount(ctx context.Context, ev Event, s *conversation.Session) ([]Message, error) {
	amount, err := conversation.ParseAmount(ev.Text)
	if err != nil {
		return amountRetry(err, msgAmountFormat), nil
	}

	s.Amount = amount
	s.State = conversation.TxCategory
	if err := r.sessions.Save(ctx, ev.UserID, s); err != nil {
		return nil, err
	}
	return r.categoryPrompt(ctx, ev, s.TxKind)
}

func (r *Router) categoryPrompt(ctx context.Context, ev Event, kind models.TransactionKind) ([]Message, error) {
	cats, err := r.ledger.Categories(ctx, ev.UserID, kind)
	if err != nil {
		return nil, err
	}
	prompt := msgExpenseCategory
	if kind == models.Income {
		prompt = msgIncomeCategory
	}
	return reply(prompt, CategoryKeyboard(cats)), nil
}

func (r *Router) txCategory(ctx context.Context, ev Event, s *conversation.Session) ([]Message, error) {
	if ev.Text == BtnAddCategory {
		s.CategoryKind = s.TxKind
		s.Detour(conversation.CategoryName)
		if err := r.sessions.Save(ctx, ev.UserID, s); err != nil {
			return nil, err
		}
		return reply(msgCategoryName, SkipKeyboard()), nil
	}
	if ev.Text == "" {
		return r.categoryPrompt(ctx, ev, s.TxKind)
	}

	s.Category = ev.Text
	s.State = conversation.TxDescription
	if err := r.sessions.Save(ctx, ev.UserID, s); err != nil {
		return nil, err
	}
	return reply(msgDescription, SkipKeyboard()), nil
}

func noteFrom(text string) string {
	if text == BtnSkip {
		return ""
	}
	return text
}

func (r *Router) txDescription(ctx context.Context, ev Event, s *conversation.Session) ([]Message, error) {
	tx := &models.Transaction{
		UserID:   ev.UserID,
		Kind:     s.TxKind,
		Amount:   s.Amount,
		Category: s.Category,
		Note:     noteFrom(ev.Text),
	}
	if err := r.ledger.RecordTransaction(ctx, tx); err != nil {
		return nil, err
	}
	if err := r.finish(ctx, ev, s); err != nil {
		return nil, err
	}
	return replyHTML(format.TransactionSaved(tx), MainMenu()), nil
}

func (r *Router) debtPerson(ctx context.Context, ev Event, s *conversation.Session) ([]Message, error) {
	if ev.Text == "" || ev.Text == BtnSkip {
		return reply(msgPersonEmpty, CancelKeyboard()), nil
	}

	s.Person = ev.Text
	s.State = conversation.DebtAmount
	if err := r.sessions.Save(ctx, ev.UserID, s); err != nil {
		return nil, err
	}
	return reply(msgDebtAmount, CancelKeyboard()), nil
}

func (r *Router) debtAmount(ctx context.Context, ev Event, s *conversation.Session) ([]Message, error) {
	amount, err := conversation.ParseAmount(ev.Text)
	if err != nil {
		return amountRetry(err, msgDebtAmountFormat), nil
	}

	s.Amount = amount
	s.State = conversation.DebtDescription
	if err := r.sessions.Save(ctx, ev.UserID, s); err != nil {
		return nil, err
	}
	return reply(msgDescription, SkipKeyboard()), nil
}

func (r *Router) debtDescription(ctx context.Context, ev Event, s *conversation.Session) ([]Message, error) {
	debt := &models.Debt{
		UserID:       ev.UserID,
		Kind:         s.DebtKind,
		Counterparty: s.Person,
		Amount:       s.Amount,
		Note:         noteFrom(ev.Text),
	}
	if err := r.ledger.RecordDebt(ctx, debt); err != nil {
		return nil, err
	}
	if err := r.finish(ctx, ev, s); err != nil {
		return nil, err
	}
	return replyHTML(format.DebtSaved(debt), DebtMenu()), nil
}

func (r *Router) categoryName(ctx context.Context, ev Event, s *conversation.Session) ([]Message, error) {
	if ev.Text == BtnSkip {
		return r.leaveCategoryDetour(ctx, ev, s, nil, msgCancelled)
	}

	err := r.ledger.CreateCategory(ctx, ev.UserID, s.CategoryKind, ev.Text)
	switch {
	case errors.Is(err, service.ErrCategoryExists):
		return reply(msgCategoryExists, SkipKeyboard()), nil
	case errors.Is(err, service.ErrReservedName):
		return reply(msgCategoryReserved, SkipKeyboard()), nil
	case errors.Is(err, service.ErrEmptyName):
		return reply(msgCategoryName, SkipKeyboard()), nil
	case err != nil:
		return nil, err
	}

	added := reply(fmt.Sprintf(msgCategoryAdded, ev.Text), nil)
	return r.leaveCategoryDetour(ctx, ev, s, added, msgDone)
}

// leaveCategoryDetour resumes the interrupted flow, or ends a standalone
// category flow with doneMsg.
func (r *Router) leaveCategoryDetour(ctx context.Context, ev Event, s *conversation.Session, out []Message, doneMsg string) ([]Message, error) {
	if s.Return() {
		if err := r.sessions.Save(ctx, ev.UserID, s); err != nil {
			return nil, err
		}
		prompt, err := r.categoryPrompt(ctx, ev, s.TxKind)
		if err != nil {
			return nil, err
		}
		return append(out, prompt...), nil
	}

	if err := r.finish(ctx, ev, s); err != nil {
		return nil, err
	}
	return append(out, reply(doneMsg, MainMenu())...), nil
}
