package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ppapp/personal_finance_app/internal/apperrors"
	"github.com/ppapp/personal_finance_app/internal/core/domain"
	portsrepo "github.com/ppapp/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ppapp/personal_finance_app/internal/core/ports/services"
	"github.com/ppapp/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

var maxRate = decimal.NewFromInt(100)

// savingsService owns the in-memory goal state and implements SavingsSvcFacade.
// The mutex serializes every mutate-then-persist sequence: concurrent HTTP
// requests must never interleave between applying a change and saving it, or
// the balance/history invariant could be observed broken.
type savingsService struct {
	BaseService
	repo portsrepo.SavingsRepository

	mu    sync.Mutex
	goals []domain.Goal // insertion order
}

// NewSavingsService hydrates the ledger from the repository. A corrupted blob
// loads as empty state inside the repository; only real I/O failures surface
// here and abort startup.
func NewSavingsService(ctx context.Context, repo portsrepo.SavingsRepository) (portssvc.SavingsSvcFacade, error) {
	goals, err := repo.LoadGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate savings ledger: %w", err)
	}
	return &savingsService{repo: repo, goals: goals}, nil
}

var _ portssvc.SavingsSvcFacade = (*savingsService)(nil)

// cloneGoals deep-copies the goal list so mutations are built on a private
// copy and only swapped in after a successful save. Memory never diverges
// from storage on a failed save.
func cloneGoals(goals []domain.Goal) []domain.Goal {
	next := make([]domain.Goal, len(goals))
	copy(next, goals)
	for i := range next {
		txns := make([]domain.Transaction, len(next[i].Transactions))
		copy(txns, next[i].Transactions)
		next[i].Transactions = txns
	}
	return next
}

// persist saves next as the whole ledger state and swaps it in on success.
// Callers must hold s.mu.
func (s *savingsService) persist(ctx context.Context, next []domain.Goal) error {
	if err := s.repo.SaveGoals(ctx, next); err != nil {
		s.LogError(ctx, err, "Failed to persist savings ledger")
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	s.goals = next
	return nil
}

func (s *savingsService) findGoal(goals []domain.Goal, goalID string) int {
	for i := range goals {
		if goals[i].GoalID == goalID {
			return i
		}
	}
	return -1
}

func (s *savingsService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: goal name must not be empty", apperrors.ErrValidation)
	}
	if req.Rate.IsNegative() || req.Rate.GreaterThan(maxRate) {
		return nil, fmt.Errorf("%w: rate must be between 0 and 100", apperrors.ErrValidation)
	}

	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		Name:         name,
		Balance:      decimal.Zero,
		IsPercentage: req.IsPercentage,
		Rate:         req.Rate,
		Transactions: []domain.Transaction{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(cloneGoals(s.goals), goal)
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Savings goal created",
		slog.String("goal_id", goal.GoalID),
		slog.String("goal_name", goal.Name),
		slog.Bool("is_percentage", goal.IsPercentage))
	return &goal, nil
}

func (s *savingsService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneGoals(s.goals), nil
}

func (s *savingsService) GetGoal(ctx context.Context, goalID string) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findGoal(s.goals, goalID)
	if i < 0 {
		return nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}
	goal := cloneGoals(s.goals[i : i+1])[0]
	return &goal, nil
}

func (s *savingsService) Deposit(ctx context.Context, goalID string, req dto.DepositRequest) (*domain.Goal, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneGoals(s.goals)
	i := s.findGoal(next, goalID)
	if i < 0 {
		return nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}

	goal := &next[i]
	goal.Balance = goal.Balance.Add(req.Amount)
	goal.Transactions = append(goal.Transactions, domain.Transaction{
		Date:   time.Now().UTC(),
		Amount: req.Amount,
		Type:   domain.TypeDeposit,
	})

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Deposit recorded",
		slog.String("goal_id", goal.GoalID),
		slog.String("amount", req.Amount.String()),
		slog.String("balance", goal.Balance.String()))
	result := *goal
	return &result, nil
}

func (s *savingsService) UpdateGoalRate(ctx context.Context, goalID string, req dto.UpdateRateRequest) (*domain.Goal, error) {
	if req.Rate.IsNegative() || req.Rate.GreaterThan(maxRate) {
		return nil, fmt.Errorf("%w: rate must be between 0 and 100", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneGoals(s.goals)
	i := s.findGoal(next, goalID)
	if i < 0 {
		return nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}

	// Stored unconditionally; inert while IsPercentage is false.
	next[i].Rate = req.Rate

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Goal rate updated",
		slog.String("goal_id", goalID),
		slog.String("rate", req.Rate.String()))
	result := next[i]
	return &result, nil
}

func (s *savingsService) DeleteGoal(ctx context.Context, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findGoal(s.goals, goalID)
	if i < 0 {
		return fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}

	next := cloneGoals(s.goals)
	next = append(next[:i], next[i+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.LogInfo(ctx, "Savings goal deleted", slog.String("goal_id", goalID))
	return nil
}

func (s *savingsService) AccrueInterest(ctx context.Context, period domain.AccrualPeriod) ([]domain.InterestPosting, error) {
	if _, err := domain.ParseMonth(string(period)); err != nil {
		return nil, fmt.Errorf("%w: accrual period must be YYYY-MM", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneGoals(s.goals)
	var postings []domain.InterestPosting
	now := time.Now().UTC()

	for i := range next {
		goal := &next[i]
		if !goal.QualifiesForInterest(period) {
			continue
		}
		interest := goal.MonthlyInterest()
		goal.Balance = goal.Balance.Add(interest)
		goal.Transactions = append(goal.Transactions, domain.Transaction{
			Date:   now,
			Amount: interest,
			Type:   domain.TypeInterest,
		})
		goal.LastAccrual = period
		postings = append(postings, domain.InterestPosting{
			GoalID:   goal.GoalID,
			GoalName: goal.Name,
			Amount:   interest,
			Period:   period,
		})
	}

	// One save for the whole batch, even when nothing qualified.
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Interest accrual completed",
		slog.String("period", string(period)),
		slog.Int("goals_credited", len(postings)))
	return postings, nil
}
