// Package calculator contains the pure arithmetic behind reports and debt
// summaries. Nothing here touches storage.
package calculator

import (
	"fmt"
	"time"

	"github.com/mmynk/budgetbot/internal/models"
)

// Window lengths for the rolling report periods.
const (
	WeekWindow  = 7 * 24 * time.Hour
	MonthWindow = 30 * 24 * time.Hour
)

// RangeFor resolves a report period to a concrete window ending at now.
//
// Today starts at local midnight of now's location. Week and month are
// rolling windows of 7 and 30 days. All has an open start.
func RangeFor(period models.ReportPeriod, now time.Time) (models.DateRange, error) {
	switch period {
	case models.PeriodToday:
		y, m, d := now.Date()
		return models.DateRange{
			Start: time.Date(y, m, d, 0, 0, 0, 0, now.Location()),
			End:   now,
		}, nil
	case models.PeriodWeek:
		return models.DateRange{Start: now.Add(-WeekWindow), End: now}, nil
	case models.PeriodMonth:
		return models.DateRange{Start: now.Add(-MonthWindow), End: now}, nil
	case models.PeriodAll:
		return models.DateRange{End: now}, nil
	default:
		return models.DateRange{}, fmt.Errorf("unknown report period %q", period)
	}
}
