package models

// Balance sums transactions over a window.
type Balance struct {
	Income  float64
	Expense float64
	// Balance is always Income - Expense.
	Balance float64
}

// CategoryStat aggregates one category's transactions of a single kind.
type CategoryStat struct {
	Category string
	Total    float64
	Count    int
}

// ReportPeriod names a report window selectable from the report menu.
type ReportPeriod string

const (
	PeriodToday ReportPeriod = "today"
	PeriodWeek  ReportPeriod = "week"
	PeriodMonth ReportPeriod = "month"
	PeriodAll   ReportPeriod = "all"
)

// Report is the data behind a period report.
type Report struct {
	Period  ReportPeriod
	Balance Balance
	Income  []CategoryStat
	Expense []CategoryStat
}
