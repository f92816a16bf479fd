package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/budgetbot/internal/conversation"
	"github.com/mmynk/budgetbot/internal/format"
	"github.com/mmynk/budgetbot/internal/models"
)

// Action is a menu or command intent.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionHelp
	ActionCancel
	ActionMainMenu
	ActionHistory
	ActionAddIncome
	ActionAddExpense
	ActionBalance
	ActionReportMenu
	ActionDebtMenu
	ActionAddLent
	ActionAddOwe
	ActionDebtList
	ActionCloseDebt
	ActionSettings
	ActionCategoryMenu
	ActionIncomeCategories
	ActionExpenseCategories

	actionCount
)

var actionNames = [...]string{
	ActionNone:              "none",
	ActionStart:             "start",
	ActionHelp:              "help",
	ActionCancel:            "cancel",
	ActionMainMenu:          "main_menu",
	ActionHistory:           "history",
	ActionAddIncome:         "add_income",
	ActionAddExpense:        "add_expense",
	ActionBalance:           "balance",
	ActionReportMenu:        "report_menu",
	ActionDebtMenu:          "debt_menu",
	ActionAddLent:           "add_lent",
	ActionAddOwe:            "add_owe",
	ActionDebtList:          "debt_list",
	ActionCloseDebt:         "close_debt",
	ActionSettings:          "settings",
	ActionCategoryMenu:      "category_menu",
	ActionIncomeCategories:  "income_categories",
	ActionExpenseCategories: "expense_categories",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// buttonActions maps exact button texts and commands to actions.
var buttonActions = map[string]Action{
	"/start":   ActionStart,
	"/help":    ActionHelp,
	"/cancel":  ActionCancel,
	"/history": ActionHistory,

	BtnCancel:   ActionCancel,
	BtnMainMenu: ActionMainMenu,

	BtnAddIncome:  ActionAddIncome,
	BtnAddExpense: ActionAddExpense,
	BtnBalance:    ActionBalance,
	BtnReport:     ActionReportMenu,
	BtnDebts:      ActionDebtMenu,
	BtnSettings:   ActionSettings,
	BtnHistory:    ActionHistory,

	BtnAddLent:   ActionAddLent,
	BtnAddOwe:    ActionAddOwe,
	BtnDebtList:  ActionDebtList,
	BtnCloseDebt: ActionCloseDebt,

	BtnCategories:        ActionCategoryMenu,
	BtnIncomeCategories:  ActionIncomeCategories,
	BtnExpenseCategories: ActionExpenseCategories,
}

// Lookup resolves message text to an action. Commands may carry a bot
// mention ("/start@budget_bot") or arguments.
func Lookup(text string) Action {
	if strings.HasPrefix(text, "/") {
		cmd, _, _ := strings.Cut(text, " ")
		cmd, _, _ = strings.Cut(cmd, "@")
		text = cmd
	}
	return buttonActions[text]
}

// HistoryLimit is how many transactions /history shows.
const HistoryLimit = 10

func (r *Router) registerActions() {
	r.actions = map[Action]HandlerFunc{
		ActionStart:             r.start,
		ActionHelp:              r.help,
		ActionCancel:            r.cancel(msgCancelled),
		ActionMainMenu:          r.cancel(msgMainMenu),
		ActionHistory:           r.history,
		ActionAddIncome:         r.startTransaction(models.Income),
		ActionAddExpense:        r.startTransaction(models.Expense),
		ActionBalance:           r.balance,
		ActionReportMenu:        static(msgReportMenu, ReportPeriodKeyboard()),
		ActionDebtMenu:          static(msgDebtMenu, DebtMenu()),
		ActionAddLent:           r.startDebt(models.Lent),
		ActionAddOwe:            r.startDebt(models.Owe),
		ActionDebtList:          static(msgDebtTypeMenu, DebtTypeKeyboard()),
		ActionCloseDebt:         r.pickDebt,
		ActionSettings:          static(msgSettingsMenu, SettingsMenu()),
		ActionCategoryMenu:      static(msgCategoriesMenu, CategoriesMenu()),
		ActionIncomeCategories:  r.listCategories(models.Income),
		ActionExpenseCategories: r.listCategories(models.Expense),
	}
}

func static(text string, kb *Keyboard) HandlerFunc {
	return func(context.Context, Event) ([]Message, error) {
		return reply(text, kb), nil
	}
}

func (r *Router) start(ctx context.Context, ev Event) ([]Message, error) {
	if err := r.ledger.Register(ctx, userOf(ev)); err != nil {
		return nil, err
	}
	if err := r.sessions.Delete(ctx, ev.UserID); err != nil {
		return nil, err
	}

	name := ev.FirstName
	if name == "" {
		name = ev.Username
	}
	return reply(fmt.Sprintf(msgGreeting, name), MainMenu()), nil
}

func (r *Router) help(context.Context, Event) ([]Message, error) {
	return replyHTML(msgHelp, nil), nil
}

func (r *Router) cancel(text string) HandlerFunc {
	return func(ctx context.Context, ev Event) ([]Message, error) {
		if err := r.sessions.Delete(ctx, ev.UserID); err != nil {
			return nil, err
		}
		return reply(text, MainMenu()), nil
	}
}

func (r *Router) history(ctx context.Context, ev Event) ([]Message, error) {
	txs, err := r.ledger.History(ctx, ev.UserID, HistoryLimit)
	if err != nil {
		return nil, err
	}
	return replyHTML(format.History(txs, r.ledger.Location()), nil), nil
}

func (r *Router) startTransaction(kind models.TransactionKind) HandlerFunc {
	prompt := msgExpenseAmount
	if kind == models.Income {
		prompt = msgIncomeAmount
	}
	return func(ctx context.Context, ev Event) ([]Message, error) {
		if err := r.begin(ctx, ev, conversation.NewTransactionFlow(kind)); err != nil {
			return nil, err
		}
		return reply(prompt, CancelKeyboard()), nil
	}
}

func (r *Router) startDebt(kind models.DebtKind) HandlerFunc {
	prompt := msgOwePerson
	if kind == models.Lent {
		prompt = msgLentPerson
	}
	return func(ctx context.Context, ev Event) ([]Message, error) {
		if err := r.begin(ctx, ev, conversation.NewDebtFlow(kind)); err != nil {
			return nil, err
		}
		return reply(prompt, CancelKeyboard()), nil
	}
}

func (r *Router) balance(ctx context.Context, ev Event) ([]Message, error) {
	b, err := r.ledger.Balance(ctx, ev.UserID)
	if err != nil {
		return nil, err
	}
	return replyHTML(format.Balance(b), nil), nil
}

func (r *Router) pickDebt(ctx context.Context, ev Event) ([]Message, error) {
	debts, err := r.ledger.OpenDebts(ctx, ev.UserID, "")
	if err != nil {
		return nil, err
	}
	if len(debts) == 0 {
		return reply(format.NoDebts, nil), nil
	}
	return reply(msgPickDebt, CloseDebtKeyboard(debts)), nil
}

func (r *Router) listCategories(kind models.TransactionKind) HandlerFunc {
	return func(ctx context.Context, ev Event) ([]Message, error) {
		cats, err := r.ledger.Categories(ctx, ev.UserID, kind)
		if err != nil {
			return nil, err
		}
		return replyHTML(format.Categories(kind, cats), CategoryActionsKeyboard(kind, cats)), nil
	}
}
