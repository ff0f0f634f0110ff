package dto

import (
	"time"

	"github.com/ppapp/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
// Rate is only meaningful when IsPercentage is set; range checks live in the
// service so every caller gets the same policy.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	IsPercentage bool            `json:"isPercentage"`
	Rate         decimal.Decimal `json:"rate"`
}

// DepositRequest defines the data for adding money to a goal.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// UpdateRateRequest defines the data for changing a goal's monthly rate.
type UpdateRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// AccrueInterestRequest optionally pins the accrual run to a period.
// When omitted the current calendar month is used.
type AccrueInterestRequest struct {
	Period string `json:"period" binding:"omitempty,period"`
}

// TransactionResponse mirrors one history entry of a goal.
type TransactionResponse struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type,omitempty"`
}

// GoalResponse defines the data returned for a savings goal.
type GoalResponse struct {
	GoalID       string                `json:"goalID"`
	Name         string                `json:"name"`
	Balance      decimal.Decimal       `json:"balance"`
	IsPercentage bool                  `json:"isPercentage"`
	Rate         decimal.Decimal       `json:"rate"`
	Transactions []TransactionResponse `json:"transactions"`
	LastAccrual  string                `json:"lastAccrual,omitempty"`
}

// InterestPostingResponse reports one interest credit made by an accrual run.
type InterestPostingResponse struct {
	GoalID   string          `json:"goalID"`
	GoalName string          `json:"goalName"`
	Amount   decimal.Decimal `json:"amount"`
}

// AccrualResponse defines the result of an interest accrual run.
type AccrualResponse struct {
	Period        string                    `json:"period"`
	GoalsCredited int                       `json:"goalsCredited"`
	Postings      []InterestPostingResponse `json:"postings"`
}

// ToGoalResponse converts a domain.Goal to its response DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	txns := make([]TransactionResponse, len(g.Transactions))
	for i, txn := range g.Transactions {
		txns[i] = TransactionResponse{
			Date:   txn.Date,
			Amount: txn.Amount,
			Type:   string(txn.Type),
		}
	}
	return GoalResponse{
		GoalID:       g.GoalID,
		Name:         g.Name,
		Balance:      g.Balance,
		IsPercentage: g.IsPercentage,
		Rate:         g.Rate,
		Transactions: txns,
		LastAccrual:  string(g.LastAccrual),
	}
}

// ToListGoalResponse converts a goal list, preserving insertion order.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}

// ToAccrualResponse converts the postings of one accrual run.
func ToAccrualResponse(period domain.AccrualPeriod, postings []domain.InterestPosting) AccrualResponse {
	res := AccrualResponse{
		Period:        string(period),
		GoalsCredited: len(postings),
		Postings:      make([]InterestPostingResponse, len(postings)),
	}
	for i, p := range postings {
		res.Postings[i] = InterestPostingResponse{
			GoalID:   p.GoalID,
			GoalName: p.GoalName,
			Amount:   p.Amount,
		}
	}
	return res
}
