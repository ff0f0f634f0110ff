package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a single ledger transaction. Manual deposits carry no
// tag; interest postings are tagged so a goal's history stays auditable after
// accrual runs.
type TransactionType string

const (
	TypeDeposit  TransactionType = ""
	TypeInterest TransactionType = "interest"
)

// Transaction is one entry in a goal's append-only history. Entries are never
// reordered or removed; insertion order is chronological order.
type Transaction struct {
	Date   time.Time
	Amount decimal.Decimal
	Type   TransactionType
}

// AccrualPeriod identifies the calendar month of an interest run, e.g. "2026-08".
type AccrualPeriod string

// PeriodOf returns the accrual period containing t.
func PeriodOf(t time.Time) AccrualPeriod {
	return AccrualPeriod(t.Format("2006-01"))
}

// Goal is a savings goal with a redundant running balance. The balance is
// authoritative for reads but must always equal the sum of transaction
// amounts; every mutation path maintains both together.
type Goal struct {
	GoalID       string
	Name         string
	Balance      decimal.Decimal
	IsPercentage bool
	Rate         decimal.Decimal // monthly percentage, inert unless IsPercentage
	Transactions []Transaction
	LastAccrual  AccrualPeriod // empty if interest has never been posted
}

// HistoryTotal sums the goal's transaction amounts.
func (g Goal) HistoryTotal() decimal.Decimal {
	total := decimal.Zero
	for _, txn := range g.Transactions {
		total = total.Add(txn.Amount)
	}
	return total
}

// QualifiesForInterest reports whether an accrual run for period should post
// interest to this goal. A goal already accrued in the same period does not
// qualify again.
func (g Goal) QualifiesForInterest(period AccrualPeriod) bool {
	return g.IsPercentage &&
		g.Rate.IsPositive() &&
		g.Balance.IsPositive() &&
		g.LastAccrual != period
}

// MonthlyInterest returns balance * rate / 100.
func (g Goal) MonthlyInterest() decimal.Decimal {
	return g.Balance.Mul(g.Rate).Div(decimal.NewFromInt(100))
}

// InterestPosting records one interest credit made by an accrual run.
type InterestPosting struct {
	GoalID   string
	GoalName string
	Amount   decimal.Decimal
	Period   AccrualPeriod
}
