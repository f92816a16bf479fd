package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmynk/budgetbot/internal/conversation"
	"github.com/mmynk/budgetbot/internal/format"
	"github.com/mmynk/budgetbot/internal/models"
	"github.com/mmynk/budgetbot/internal/service"
)

// Callback data prefixes.
const (
	cbReport      = "report_"
	cbDebts       = "debts_"
	cbPaid        = "paid_"
	cbCategoryAdd = "catadd_"
	cbCategoryDel = "catdel_"

	debtsAll = "all"
)

func (r *Router) handleCallback(ctx context.Context, ev Event) ([]Message, error) {
	data := ev.Callback

	switch {
	case strings.HasPrefix(data, cbReport):
		return r.report(ctx, ev, models.ReportPeriod(strings.TrimPrefix(data, cbReport)))

	case strings.HasPrefix(data, cbDebts):
		kind := models.DebtKind(strings.TrimPrefix(data, cbDebts))
		if kind == debtsAll {
			kind = ""
		}
		return r.debtList(ctx, ev, kind)

	case strings.HasPrefix(data, cbPaid):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, cbPaid), 10, 64)
		if err != nil {
			break
		}
		return r.closeDebt(ctx, ev, id)

	case strings.HasPrefix(data, cbCategoryAdd):
		kind := models.TransactionKind(strings.TrimPrefix(data, cbCategoryAdd))
		if !kind.Valid() {
			break
		}
		if err := r.begin(ctx, ev, conversation.NewCategoryFlow(kind)); err != nil {
			return nil, err
		}
		return reply(msgCategoryName, SkipKeyboard()), nil

	case strings.HasPrefix(data, cbCategoryDel):
		rest := strings.TrimPrefix(data, cbCategoryDel)
		kind, rawID, ok := strings.Cut(rest, "_")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if !ok || err != nil {
			break
		}
		return r.deleteCategory(ctx, ev, models.TransactionKind(kind), id)
	}

	slog.Warn("Unknown callback", "user_id", ev.UserID, "data", data)
	return nil, nil
}

func (r *Router) report(ctx context.Context, ev Event, period models.ReportPeriod) ([]Message, error) {
	rep, err := r.ledger.Report(ctx, ev.UserID, period)
	if errors.Is(err, service.ErrUnknownPeriod) {
		slog.Warn("Unknown report period", "user_id", ev.UserID, "period", period)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return replyHTML(format.Report(rep), nil), nil
}

func (r *Router) debtList(ctx context.Context, ev Event, kind models.DebtKind) ([]Message, error) {
	debts, err := r.ledger.OpenDebts(ctx, ev.UserID, kind)
	if errors.Is(err, service.ErrInvalidKind) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(debts) == 0 {
		return reply(format.NoDebts, nil), nil
	}
	return replyHTML(format.DebtList(format.DebtListTitle(kind), debts), nil), nil
}

func (r *Router) closeDebt(ctx context.Context, ev Event, id int64) ([]Message, error) {
	debt, err := r.ledger.CloseDebt(ctx, ev.UserID, id)
	if errors.Is(err, service.ErrDebtNotFound) {
		return reply(msgDebtMissing, nil), nil
	}
	if err != nil {
		return nil, err
	}
	return replyHTML(format.DebtClosed(debt), nil), nil
}

func (r *Router) deleteCategory(ctx context.Context, ev Event, kind models.TransactionKind, id int64) ([]Message, error) {
	cat, err := r.ledger.RemoveCategory(ctx, ev.UserID, kind, id)
	switch {
	case errors.Is(err, service.ErrDefaultCategory):
		return reply(msgCategoryDefault, nil), nil
	case errors.Is(err, service.ErrCategoryNotFound), errors.Is(err, service.ErrInvalidKind):
		return reply(msgCategoryMissing, nil), nil
	case err != nil:
		return nil, err
	}
	return reply(fmt.Sprintf(msgCategoryDeleted, cat.Name), nil), nil
}
