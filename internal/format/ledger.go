package format

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/mmynk/budgetbot/internal/calculator"
	"github.com/mmynk/budgetbot/internal/models"
)

const notProvided = "не указано"

func noteOrDefault(note string) string {
	if note == "" {
		return notProvided
	}
	return html.EscapeString(note)
}

// TransactionSaved confirms a committed transaction.
func TransactionSaved(t *models.Transaction) string {
	label := "Расход"
	if t.Kind == models.Income {
		label = "Доход"
	}
	return fmt.Sprintf("✅ %s успешно добавлен!\n\nСумма: %s\nКатегория: %s\nОписание: %s",
		label, Currency(t.Amount), html.EscapeString(t.Category), noteOrDefault(t.Note))
}

// DebtSaved confirms a committed debt.
func DebtSaved(d *models.Debt) string {
	direction := "вы должны"
	if d.Kind == models.Lent {
		direction = "вам должен"
	}
	return fmt.Sprintf("✅ Долг добавлен!\n\n%s %s\nСумма: %s\nОписание: %s",
		html.EscapeString(d.Counterparty), direction, Currency(d.Amount), noteOrDefault(d.Note))
}

// DebtListTitle returns the heading for a debt list filtered by kind.
// An empty kind means all debts.
func DebtListTitle(kind models.DebtKind) string {
	switch kind {
	case models.Lent:
		return "📋 Вам должны:"
	case models.Owe:
		return "📋 Вы должны:"
	default:
		return "📋 Все непогашенные долги:"
	}
}

// NoDebts is the reply for an empty debt list.
const NoDebts = "Долгов не найдено!"

// DebtList renders debts under title with their net total.
// The total is shown as an absolute value.
func DebtList(title string, debts []*models.Debt) string {
	if len(debts) == 0 {
		return NoDebts
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n\n", title)
	for _, d := range debts {
		symbol := "➖"
		if d.Kind == models.Lent {
			symbol = "➕"
		}
		fmt.Fprintf(&b, "%s <b>%s</b>\n", symbol, html.EscapeString(d.Counterparty))
		fmt.Fprintf(&b, "   Сумма: %s\n", Currency(d.Amount))
		if d.Note != "" {
			fmt.Fprintf(&b, "   Описание: %s\n", html.EscapeString(d.Note))
		}
		fmt.Fprintf(&b, "   ID: %d\n\n", d.ID)
	}

	net := calculator.NetDebt(debts)
	if net < 0 {
		net = -net
	}
	fmt.Fprintf(&b, "\n💰 Итого: %s", Currency(net))

	return b.String()
}

// DebtButton is the inline button label for closing a debt.
func DebtButton(d *models.Debt) string {
	symbol := "➖"
	if d.Kind == models.Lent {
		symbol = "➕"
	}
	return fmt.Sprintf("%s %s: %s", symbol, d.Counterparty, Currency(d.Amount))
}

// DebtClosed confirms a closed debt.
func DebtClosed(d *models.Debt) string {
	return fmt.Sprintf("✅ Долг закрыт: %s, %s", html.EscapeString(d.Counterparty), Currency(d.Amount))
}

// Categories renders a category list, marking defaults.
func Categories(kind models.TransactionKind, cats []*models.Category) string {
	title, empty := "📉 <b>Категории расходов:</b>", "Категории расходов не найдены. Добавьте новые категории!"
	if kind == models.Income {
		title, empty = "📈 <b>Категории доходов:</b>", "Категории доходов не найдены. Добавьте новые категории!"
	}
	if len(cats) == 0 {
		return empty
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	for _, c := range cats {
		mark := ""
		if c.IsDefault {
			mark = " (по умолчанию)"
		}
		fmt.Fprintf(&b, "• %s%s\n", html.EscapeString(c.Name), mark)
	}
	return b.String()
}

// NoHistory is the reply when the user has no transactions.
const NoHistory = "Операций пока нет."

// History renders recent transactions, newest first, with times in loc.
func History(txs []*models.Transaction, loc *time.Location) string {
	if len(txs) == 0 {
		return NoHistory
	}

	var b strings.Builder
	b.WriteString("📜 <b>Последние операции:</b>\n\n")
	for _, t := range txs {
		symbol, sign := "📉", "-"
		if t.Kind == models.Income {
			symbol, sign = "📈", "+"
		}
		when := time.Unix(t.CreatedAt, 0).In(loc).Format("02.01 15:04")
		fmt.Fprintf(&b, "%s %s %s%s • %s\n", symbol, when, sign, Currency(t.Amount), html.EscapeString(t.Category))
		if t.Note != "" {
			fmt.Fprintf(&b, "   %s\n", html.EscapeString(t.Note))
		}
	}
	return b.String()
}
