package models

// DayEntry is the persisted form of one calendar day, keyed by its
// "YYYY-MM-DD" date in the calendar blob.
type DayEntry struct {
	Revenue        float64            `json:"revenue"`
	Clients        int                `json:"clients"`
	IncomeCategory string             `json:"incomeCategory,omitempty"`
	Expenses       map[string]float64 `json:"expenses"`
	Balance        float64            `json:"balance"`
}
