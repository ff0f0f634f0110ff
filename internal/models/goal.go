package models

// Goal is the persisted form of a savings goal. The JSON layout is the legacy
// wire format of earlier releases and must stay bit-exact so existing blobs
// keep importing: plain JSON numbers for amounts, ISO-8601 strings for dates,
// and no "type" key on manual deposits. Transactions keep insertion order;
// Balance equals the sum of their amounts.
type Goal struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Balance      float64       `json:"balance"`
	IsPercentage bool          `json:"isPercentage"`
	Rate         float64       `json:"rate"`
	Transactions []Transaction `json:"transactions"`
	LastAccrual  string        `json:"lastAccrual,omitempty"`
}

// Transaction is the persisted form of a history entry.
type Transaction struct {
	Date   string  `json:"date"` // ISO-8601
	Amount float64 `json:"amount"`
	Type   string  `json:"type,omitempty"` // "interest" for accrual postings
}
