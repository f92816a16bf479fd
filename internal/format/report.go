package format

import (
	"fmt"
	"html"
	"strings"

	"github.com/mmynk/budgetbot/internal/calculator"
	"github.com/mmynk/budgetbot/internal/models"
)

// NoData is the report body when the period has no transactions.
const NoData = "Нет данных за выбранный период."

// PeriodTitle returns the human title of a report period.
func PeriodTitle(p models.ReportPeriod) string {
	switch p {
	case models.PeriodToday:
		return "Сегодня"
	case models.PeriodWeek:
		return "За неделю"
	case models.PeriodMonth:
		return "За месяц"
	default:
		return "За весь период"
	}
}

// Report renders a period report: the balance block followed by the income
// and expense breakdowns with each category's share of its kind total.
func Report(r *models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 <b>Отчет: %s</b>\n\n", PeriodTitle(r.Period))

	b.WriteString("💰 <b>Общий баланс:</b>\n")
	fmt.Fprintf(&b, "📈 Доходы: %s\n", Currency(r.Balance.Income))
	fmt.Fprintf(&b, "📉 Расходы: %s\n", Currency(r.Balance.Expense))
	b.WriteString(strings.Repeat("➖", 25) + "\n")
	fmt.Fprintf(&b, "💵 Итого: %s\n\n", Currency(r.Balance.Balance))

	writeStats(&b, "📈 <b>Доходы по категориям:</b>", r.Income)
	writeStats(&b, "📉 <b>Расходы по категориям:</b>", r.Expense)

	if len(r.Income) == 0 && len(r.Expense) == 0 {
		b.WriteString(NoData)
	}

	return b.String()
}

// writeStats lists stats with each category's share of their sum.
func writeStats(b *strings.Builder, title string, stats []models.CategoryStat) {
	if len(stats) == 0 {
		return
	}
	total := calculator.SumStats(stats)
	b.WriteString(title + "\n")
	for _, s := range stats {
		fmt.Fprintf(b, "  • %s: %s (%.1f%%)\n",
			html.EscapeString(s.Category), Currency(s.Total), calculator.Share(s.Total, total))
	}
	b.WriteString("\n")
}

// Balance renders the all-time balance reply.
func Balance(bal *models.Balance) string {
	var b strings.Builder
	b.WriteString("💰 <b>Ваш баланс:</b>\n\n")
	fmt.Fprintf(&b, "📈 Доходы: %s\n", Currency(bal.Income))
	fmt.Fprintf(&b, "📉 Расходы: %s\n", Currency(bal.Expense))
	b.WriteString(strings.Repeat("➖", 20) + "\n")
	fmt.Fprintf(&b, "💵 Баланс: %s", Currency(bal.Balance))
	return b.String()
}
