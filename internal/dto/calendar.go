package dto

import (
	"github.com/ppapp/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveDayEntryRequest defines the data for upserting one calendar day.
// Balance is not accepted from the client; the service derives it.
type SaveDayEntryRequest struct {
	Revenue        decimal.Decimal            `json:"revenue"`
	Clients        int                        `json:"clients" binding:"gte=0"`
	IncomeCategory string                     `json:"incomeCategory"`
	Expenses       map[string]decimal.Decimal `json:"expenses"`
}

// DayEntryResponse defines the data returned for one calendar day.
type DayEntryResponse struct {
	Date           string                     `json:"date"`
	Revenue        decimal.Decimal            `json:"revenue"`
	Clients        int                        `json:"clients"`
	IncomeCategory string                     `json:"incomeCategory,omitempty"`
	Expenses       map[string]decimal.Decimal `json:"expenses"`
	Balance        decimal.Decimal            `json:"balance"`
}

// MonthSummaryResponse aggregates one month of entries.
type MonthSummaryResponse struct {
	Month        string                     `json:"month"`
	Days         int                        `json:"days"`
	Revenue      decimal.Decimal            `json:"revenue"`
	Clients      int                        `json:"clients"`
	Expenses     map[string]decimal.Decimal `json:"expenses"`
	ExpenseTotal decimal.Decimal            `json:"expenseTotal"`
	Balance      decimal.Decimal            `json:"balance"`
}

// ToDayEntryResponse converts a domain.DayEntry to its response DTO.
func ToDayEntryResponse(e *domain.DayEntry) DayEntryResponse {
	return DayEntryResponse{
		Date:           e.Date,
		Revenue:        e.Revenue,
		Clients:        e.Clients,
		IncomeCategory: e.IncomeCategory,
		Expenses:       e.Expenses,
		Balance:        e.Balance,
	}
}

// ToListDayEntryResponse converts a list of day entries.
func ToListDayEntryResponse(entries []domain.DayEntry) []DayEntryResponse {
	res := make([]DayEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToDayEntryResponse(&entries[i])
	}
	return res
}

// ToMonthSummaryResponse converts a domain.MonthSummary.
func ToMonthSummaryResponse(s *domain.MonthSummary) MonthSummaryResponse {
	return MonthSummaryResponse{
		Month:        s.Month,
		Days:         s.Days,
		Revenue:      s.Revenue,
		Clients:      s.Clients,
		Expenses:     s.Expenses,
		ExpenseTotal: s.ExpenseTotal,
		Balance:      s.Balance,
	}
}
