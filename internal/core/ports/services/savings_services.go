package services

import (
	"context"

	"github.com/ppapp/personal_finance_app/internal/core/domain"
	"github.com/ppapp/personal_finance_app/internal/dto"
)

// SavingsSvcFacade is the full surface the savings ledger exposes to the
// presentation layer. Every mutation validates its input, applies the change
// to in-memory state and persists the whole ledger before returning; failures
// are reported through apperrors sentinels (ErrNotFound, ErrValidation,
// ErrPersistence); no mutation fails silently.
type SavingsSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GetGoal(ctx context.Context, goalID string) (*domain.Goal, error)
	Deposit(ctx context.Context, goalID string, req dto.DepositRequest) (*domain.Goal, error)
	UpdateGoalRate(ctx context.Context, goalID string, req dto.UpdateRateRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error

	// AccrueInterest posts one month of interest to every qualifying goal and
	// persists the batch with a single save. Goals already accrued in the same
	// period are skipped, so repeated invocation within a period is safe.
	AccrueInterest(ctx context.Context, period domain.AccrualPeriod) ([]domain.InterestPosting, error)
}
