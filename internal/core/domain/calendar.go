package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Date layouts used as calendar keys.
const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// DayEntry is the record for one calendar day: revenue, client count, income
// category and per-category expenses. Balance is derived from the other
// fields and recomputed on every save.
type DayEntry struct {
	Date           string // DayLayout key
	Revenue        decimal.Decimal
	Clients        int
	IncomeCategory string
	Expenses       map[string]decimal.Decimal
	Balance        decimal.Decimal // Revenue - ExpenseTotal
}

// ExpenseTotal sums the entry's expenses across all categories.
func (e DayEntry) ExpenseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range e.Expenses {
		total = total.Add(amount)
	}
	return total
}

// MonthSummary aggregates the entries of one calendar month.
type MonthSummary struct {
	Month        string // MonthLayout key
	Days         int
	Revenue      decimal.Decimal
	Clients      int
	Expenses     map[string]decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}

// ParseDay validates a DayLayout date key.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// ParseMonth validates a MonthLayout month key.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse(MonthLayout, s)
}
