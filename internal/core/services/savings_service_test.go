package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/ppapp/personal_finance_app/internal/apperrors"
	"github.com/ppapp/personal_finance_app/internal/core/domain"
	portssvc "github.com/ppapp/personal_finance_app/internal/core/ports/services"
	"github.com/ppapp/personal_finance_app/internal/core/services"
	"github.com/ppapp/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// fakeSavingsRepo is an in-memory stand-in honoring the whole-blob contract:
// every save replaces the stored goal list.
type fakeSavingsRepo struct {
	goals   []domain.Goal
	saves   int
	saveErr error
}

func (f *fakeSavingsRepo) LoadGoals(ctx context.Context) ([]domain.Goal, error) {
	return f.goals, nil
}

func (f *fakeSavingsRepo) SaveGoals(ctx context.Context, goals []domain.Goal) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.goals = goals
	f.saves++
	return nil
}

type SavingsServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *fakeSavingsRepo
	service portssvc.SavingsSvcFacade
}

func (suite *SavingsServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = &fakeSavingsRepo{}
	var err error
	suite.service, err = services.NewSavingsService(suite.ctx, suite.repo)
	suite.Require().NoError(err)
}

func (suite *SavingsServiceTestSuite) mustCreate(req dto.CreateGoalRequest) domain.Goal {
	goal, err := suite.service.CreateGoal(suite.ctx, req)
	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	return *goal
}

func (suite *SavingsServiceTestSuite) TestCreateGoal_Success() {
	goal := suite.mustCreate(dto.CreateGoalRequest{Name: "Vacation", IsPercentage: true, Rate: decimal.NewFromInt(5)})

	suite.NotEmpty(goal.GoalID)
	suite.Equal("Vacation", goal.Name)
	suite.True(goal.Balance.IsZero())
	suite.True(goal.IsPercentage)
	suite.Empty(goal.Transactions)
	suite.Equal(1, suite.repo.saves)
	suite.Len(suite.repo.goals, 1)
}

func (suite *SavingsServiceTestSuite) TestCreateGoal_TrimsName() {
	goal := suite.mustCreate(dto.CreateGoalRequest{Name: "  Car  "})
	suite.Equal("Car", goal.Name)
}

func (suite *SavingsServiceTestSuite) TestCreateGoal_EmptyName() {
	for _, name := range []string{"", "   "} {
		_, err := suite.service.CreateGoal(suite.ctx, dto.CreateGoalRequest{Name: name})
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.Zero(suite.repo.saves)
}

func (suite *SavingsServiceTestSuite) TestCreateGoal_RateOutOfRange() {
	for _, rate := range []decimal.Decimal{decimal.NewFromInt(-1), decimal.NewFromInt(101)} {
		_, err := suite.service.CreateGoal(suite.ctx, dto.CreateGoalRequest{Name: "G", IsPercentage: true, Rate: rate})
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *SavingsServiceTestSuite) TestCreateGoal_UniqueIDs() {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		goal := suite.mustCreate(dto.CreateGoalRequest{Name: fmt.Sprintf("Goal %d", i)})
		suite.False(seen[goal.GoalID], "goal ID reused: %s", goal.GoalID)
		seen[goal.GoalID] = true
	}
}

func (suite *SavingsServiceTestSuite) TestDeposit_Success() {
	goal := suite.mustCreate(dto.CreateGoalRequest{Name: "Vacation"})

	updated, err := suite.service.Deposit(suite.ctx, goal.GoalID, dto.DepositRequest{Amount: decimal.NewFromInt(1000)})
	suite.Require().NoError(err)

	suite.True(decimal.NewFromInt(1000).Equal(updated.Balance))
	suite.Require().Len(updated.Transactions, 1)
	suite.Equal(domain.TypeDeposit, updated.Transactions[0].Type)
	suite.True(updated.Balance.Equal(updated.HistoryTotal()))
}

func (suite *SavingsServiceTestSuite) TestDeposit_NonPositiveAmount() {
	goal := suite.mustCreate(dto.CreateGoalRequest{Name: "Vacation"})
	savesBefore := suite.repo.saves

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := suite.service.Deposit(suite.ctx, goal.GoalID, dto.DepositRequest{Amount: amount})
		suite.ErrorIs(err, apperrors.ErrValidation)
	}

	unchanged, err := suite.service.GetGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)
	suite.True(unchanged.Balance.IsZero())
	suite.Empty(unchanged.Transactions)
	suite.Equal(savesBefore, suite.repo.saves)
}

func (suite *SavingsServiceTestSuite) TestDeposit_NotFound() {
	suite.mustCreate(dto.CreateGoalRequest{Name: "Vacation"})
	before := suite.repo.saves

	_, err := suite.service.Deposit(suite.ctx, "nonexistent", dto.DepositRequest{Amount: decimal.NewFromInt(100)})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(before, suite.repo.saves)
}

func (suite *SavingsServiceTestSuite) TestUpdateGoalRate() {
	// Rate is stored even on a non-percentage goal, where it stays inert.
	goal := suite.mustCreate(dto.CreateGoalRequest{Name: "Plain"})

	updated, err := suite.service.UpdateGoalRate(suite.ctx, goal.GoalID, dto.UpdateRateRequest{Rate: decimal.NewFromInt(7)})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(7).Equal(updated.Rate))
	suite.False(updated.IsPercentage)

	_, err = suite.service.UpdateGoalRate(suite.ctx, goal.GoalID, dto.UpdateRateRequest{Rate: decimal.NewFromInt(101)})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateGoalRate(suite.ctx, "nonexistent", dto.UpdateRateRequest{Rate: decimal.NewFromInt(5)})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SavingsServiceTestSuite) TestDeleteGoal_Terminal() {
	goal := suite.mustCreate(dto.CreateGoalRequest{Name: "Doomed"})

	suite.Require().NoError(suite.service.DeleteGoal(suite.ctx, goal.GoalID))
	suite.Empty(suite.repo.goals)

	// Every further operation on the id reports not-found.
	_, err := suite.service.GetGoal(suite.ctx, goal.GoalID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.service.Deposit(suite.ctx, goal.GoalID, dto.DepositRequest{Amount: decimal.NewFromInt(10)})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(suite.service.DeleteGoal(suite.ctx, goal.GoalID), apperrors.ErrNotFound)
}

func (suite *SavingsServiceTestSuite) TestAccrueInterest_Selectivity() {
	period := domain.AccrualPeriod("2026-08")
	deposit := func(id string, amount int64) {
		_, err := suite.service.Deposit(suite.ctx, id, dto.DepositRequest{Amount: decimal.NewFromInt(amount)})
		suite.Require().NoError(err)
	}

	g1 := suite.mustCreate(dto.CreateGoalRequest{Name: "G1"})
	g2 := suite.mustCreate(dto.CreateGoalRequest{Name: "G2", IsPercentage: true, Rate: decimal.Zero})
	g3 := suite.mustCreate(dto.CreateGoalRequest{Name: "G3", IsPercentage: true, Rate: decimal.NewFromInt(10)})
	g4 := suite.mustCreate(dto.CreateGoalRequest{Name: "G4", IsPercentage: true, Rate: decimal.NewFromInt(10)})
	deposit(g1.GoalID, 500)
	deposit(g2.GoalID, 500)
	deposit(g4.GoalID, 1000)
	savesBefore := suite.repo.saves

	postings, err := suite.service.AccrueInterest(suite.ctx, period)
	suite.Require().NoError(err)

	// Only G4 qualifies; the whole batch costs a single save.
	suite.Require().Len(postings, 1)
	suite.Equal(g4.GoalID, postings[0].GoalID)
	suite.True(decimal.NewFromInt(100).Equal(postings[0].Amount))
	suite.Equal(savesBefore+1, suite.repo.saves)

	check := func(id string, balance int64, txns int) {
		goal, err := suite.service.GetGoal(suite.ctx, id)
		suite.Require().NoError(err)
		suite.True(decimal.NewFromInt(balance).Equal(goal.Balance), "goal %s balance %s", goal.Name, goal.Balance)
		suite.Len(goal.Transactions, txns)
		suite.True(goal.Balance.Equal(goal.HistoryTotal()))
	}
	check(g1.GoalID, 500, 1)
	check(g2.GoalID, 500, 1)
	check(g3.GoalID, 0, 0)
	check(g4.GoalID, 1100, 2)
}

func (suite *SavingsServiceTestSuite) TestAccrueInterest_IdempotentWithinPeriod() {
	goal := suite.mustCreate(dto.CreateGoalRequest{Name: "Savings", IsPercentage: true, Rate: decimal.NewFromInt(10)})
	_, err := suite.service.Deposit(suite.ctx, goal.GoalID, dto.DepositRequest{Amount: decimal.NewFromInt(1000)})
	suite.Require().NoError(err)

	postings, err := suite.service.AccrueInterest(suite.ctx, "2026-08")
	suite.Require().NoError(err)
	suite.Len(postings, 1)

	// Second run in the same period credits nothing.
	postings, err = suite.service.AccrueInterest(suite.ctx, "2026-08")
	suite.Require().NoError(err)
	suite.Empty(postings)

	after, err := suite.service.GetGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1100).Equal(after.Balance))

	// A new period accrues again, on the compounded balance.
	postings, err = suite.service.AccrueInterest(suite.ctx, "2026-09")
	suite.Require().NoError(err)
	suite.Require().Len(postings, 1)
	suite.True(decimal.NewFromInt(110).Equal(postings[0].Amount))
}

func (suite *SavingsServiceTestSuite) TestAccrueInterest_BadPeriod() {
	_, err := suite.service.AccrueInterest(suite.ctx, "august")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SavingsServiceTestSuite) TestVacationScenario() {
	goal := suite.mustCreate(dto.CreateGoalRequest{Name: "Vacation", IsPercentage: true, Rate: decimal.NewFromInt(5)})
	suite.True(goal.Balance.IsZero())

	updated, err := suite.service.Deposit(suite.ctx, goal.GoalID, dto.DepositRequest{Amount: decimal.NewFromInt(1000)})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1000).Equal(updated.Balance))
	suite.Len(updated.Transactions, 1)

	_, err = suite.service.AccrueInterest(suite.ctx, "2026-08")
	suite.Require().NoError(err)

	after, err := suite.service.GetGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1050).Equal(after.Balance))
	suite.Require().Len(after.Transactions, 2)
	suite.Equal(domain.TypeInterest, after.Transactions[1].Type)
	suite.True(decimal.NewFromInt(50).Equal(after.Transactions[1].Amount))
	suite.True(after.Balance.Equal(after.HistoryTotal()))
}

func (suite *SavingsServiceTestSuite) TestPersistenceFailureLeavesStateUntouched() {
	goal := suite.mustCreate(dto.CreateGoalRequest{Name: "Vacation"})

	suite.repo.saveErr = fmt.Errorf("disk full")
	_, err := suite.service.Deposit(suite.ctx, goal.GoalID, dto.DepositRequest{Amount: decimal.NewFromInt(100)})
	suite.ErrorIs(err, apperrors.ErrPersistence)

	// The failed deposit must not linger in memory.
	suite.repo.saveErr = nil
	unchanged, err := suite.service.GetGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)
	suite.True(unchanged.Balance.IsZero())
	suite.Empty(unchanged.Transactions)
}

func TestSavingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SavingsServiceTestSuite))
}
