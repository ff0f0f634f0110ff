package mapping

import (
	"fmt"
	"time"

	"github.com/ppapp/personal_finance_app/internal/core/domain"
	"github.com/ppapp/personal_finance_app/internal/models"
	"github.com/shopspring/decimal"
)

// txnDateLayout matches the ISO-8601 timestamps of the legacy blobs
// (millisecond precision, UTC).
const txnDateLayout = "2006-01-02T15:04:05.000Z07:00"

// ToModelGoal converts a domain.Goal to its persisted form.
func ToModelGoal(d domain.Goal) models.Goal {
	txns := make([]models.Transaction, len(d.Transactions))
	for i, txn := range d.Transactions {
		txns[i] = models.Transaction{
			Date:   txn.Date.UTC().Format(txnDateLayout),
			Amount: txn.Amount.InexactFloat64(),
			Type:   string(txn.Type),
		}
	}
	return models.Goal{
		ID:           d.GoalID,
		Name:         d.Name,
		Balance:      d.Balance.InexactFloat64(),
		IsPercentage: d.IsPercentage,
		Rate:         d.Rate.InexactFloat64(),
		Transactions: txns,
		LastAccrual:  string(d.LastAccrual),
	}
}

// ToDomainGoal converts a persisted goal back to its domain form.
func ToDomainGoal(m models.Goal) (domain.Goal, error) {
	txns := make([]domain.Transaction, len(m.Transactions))
	for i, txn := range m.Transactions {
		date, err := time.Parse(time.RFC3339, txn.Date)
		if err != nil {
			return domain.Goal{}, fmt.Errorf("goal %s: bad transaction date %q: %w", m.ID, txn.Date, err)
		}
		txns[i] = domain.Transaction{
			Date:   date,
			Amount: decimal.NewFromFloat(txn.Amount),
			Type:   domain.TransactionType(txn.Type),
		}
	}
	return domain.Goal{
		GoalID:       m.ID,
		Name:         m.Name,
		Balance:      decimal.NewFromFloat(m.Balance),
		IsPercentage: m.IsPercentage,
		Rate:         decimal.NewFromFloat(m.Rate),
		Transactions: txns,
		LastAccrual:  domain.AccrualPeriod(m.LastAccrual),
	}, nil
}

// ToModelGoals converts a goal list for persistence, preserving order.
func ToModelGoals(ds []domain.Goal) []models.Goal {
	ms := make([]models.Goal, len(ds))
	for i, d := range ds {
		ms[i] = ToModelGoal(d)
	}
	return ms
}

// ToDomainGoals converts a persisted goal list, preserving order.
func ToDomainGoals(ms []models.Goal) ([]domain.Goal, error) {
	ds := make([]domain.Goal, len(ms))
	for i, m := range ms {
		d, err := ToDomainGoal(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
