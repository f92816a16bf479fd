package calculator

import "github.com/mmynk/budgetbot/internal/models"

// Share returns part as a percentage of total, or 0 when total is 0.
func Share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// SumStats totals a category breakdown.
func SumStats(stats []models.CategoryStat) float64 {
	var sum float64
	for _, s := range stats {
		sum += s.Total
	}
	return sum
}

// NetDebt is what others owe the user minus what the user owes.
// Positive means the user is owed money. Paid debts are ignored.
func NetDebt(debts []*models.Debt) float64 {
	var net float64
	for _, d := range debts {
		if d.Paid {
			continue
		}
		switch d.Kind {
		case models.Lent:
			net += d.Amount
		case models.Owe:
			net -= d.Amount
		}
	}
	return net
}
