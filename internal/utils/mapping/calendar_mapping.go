package mapping

import (
	"github.com/ppapp/personal_finance_app/internal/core/domain"
	"github.com/ppapp/personal_finance_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelDayEntry converts a domain.DayEntry to its persisted form.
func ToModelDayEntry(d domain.DayEntry) models.DayEntry {
	expenses := make(map[string]float64, len(d.Expenses))
	for category, amount := range d.Expenses {
		expenses[category] = amount.InexactFloat64()
	}
	return models.DayEntry{
		Revenue:        d.Revenue.InexactFloat64(),
		Clients:        d.Clients,
		IncomeCategory: d.IncomeCategory,
		Expenses:       expenses,
		Balance:        d.Balance.InexactFloat64(),
	}
}

// ToDomainDayEntry converts a persisted day entry back to its domain form.
// The date is the blob key, supplied by the caller.
func ToDomainDayEntry(date string, m models.DayEntry) domain.DayEntry {
	expenses := make(map[string]decimal.Decimal, len(m.Expenses))
	for category, amount := range m.Expenses {
		expenses[category] = decimal.NewFromFloat(amount)
	}
	return domain.DayEntry{
		Date:           date,
		Revenue:        decimal.NewFromFloat(m.Revenue),
		Clients:        m.Clients,
		IncomeCategory: m.IncomeCategory,
		Expenses:       expenses,
		Balance:        decimal.NewFromFloat(m.Balance),
	}
}

// ToModelCalendar converts the full calendar state for persistence.
func ToModelCalendar(ds map[string]domain.DayEntry) map[string]models.DayEntry {
	ms := make(map[string]models.DayEntry, len(ds))
	for date, d := range ds {
		ms[date] = ToModelDayEntry(d)
	}
	return ms
}

// ToDomainCalendar converts a persisted calendar blob.
func ToDomainCalendar(ms map[string]models.DayEntry) map[string]domain.DayEntry {
	ds := make(map[string]domain.DayEntry, len(ms))
	for date, m := range ms {
		ds[date] = ToDomainDayEntry(date, m)
	}
	return ds
}
