package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/ppapp/personal_finance_app/internal/apperrors"
	"github.com/ppapp/personal_finance_app/internal/core/domain"
	portsrepo "github.com/ppapp/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ppapp/personal_finance_app/internal/core/ports/services"
	"github.com/ppapp/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// calendarService owns the in-memory calendar state, one DayEntry per date
// key. Same ownership discipline as the savings ledger: mutate a private
// copy, save, swap in.
type calendarService struct {
	BaseService
	repo portsrepo.CalendarRepository

	mu      sync.Mutex
	entries map[string]domain.DayEntry
}

// NewCalendarService hydrates the calendar from the repository.
func NewCalendarService(ctx context.Context, repo portsrepo.CalendarRepository) (portssvc.CalendarSvcFacade, error) {
	entries, err := repo.LoadEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate calendar: %w", err)
	}
	return &calendarService{repo: repo, entries: entries}, nil
}

var _ portssvc.CalendarSvcFacade = (*calendarService)(nil)

func cloneEntries(entries map[string]domain.DayEntry) map[string]domain.DayEntry {
	next := make(map[string]domain.DayEntry, len(entries))
	for date, entry := range entries {
		expenses := make(map[string]decimal.Decimal, len(entry.Expenses))
		for category, amount := range entry.Expenses {
			expenses[category] = amount
		}
		entry.Expenses = expenses
		next[date] = entry
	}
	return next
}

func (s *calendarService) persist(ctx context.Context, next map[string]domain.DayEntry) error {
	if err := s.repo.SaveEntries(ctx, next); err != nil {
		s.LogError(ctx, err, "Failed to persist calendar")
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	s.entries = next
	return nil
}

func (s *calendarService) SaveDayEntry(ctx context.Context, date string, req dto.SaveDayEntryRequest) (*domain.DayEntry, error) {
	if _, err := domain.ParseDay(date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	if req.Revenue.IsNegative() {
		return nil, fmt.Errorf("%w: revenue must not be negative", apperrors.ErrValidation)
	}

	expenses := make(map[string]decimal.Decimal, len(req.Expenses))
	for category, amount := range req.Expenses {
		category = strings.TrimSpace(category)
		if category == "" {
			return nil, fmt.Errorf("%w: expense category must not be empty", apperrors.ErrValidation)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: expense %q must not be negative", apperrors.ErrValidation, category)
		}
		expenses[category] = amount
	}

	entry := domain.DayEntry{
		Date:           date,
		Revenue:        req.Revenue,
		Clients:        req.Clients,
		IncomeCategory: req.IncomeCategory,
		Expenses:       expenses,
	}
	entry.Balance = entry.Revenue.Sub(entry.ExpenseTotal())

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneEntries(s.entries)
	next[date] = entry

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Day entry saved",
		slog.String("date", date),
		slog.String("balance", entry.Balance.String()))
	return &entry, nil
}

func (s *calendarService) GetDayEntry(ctx context.Context, date string) (*domain.DayEntry, error) {
	if _, err := domain.ParseDay(date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[date]
	if !ok {
		return nil, fmt.Errorf("%w: no entry for %s", apperrors.ErrNotFound, date)
	}
	entry = cloneEntries(map[string]domain.DayEntry{date: entry})[date]
	return &entry, nil
}

func (s *calendarService) ListMonth(ctx context.Context, month string) ([]domain.DayEntry, error) {
	if _, err := domain.ParseMonth(month); err != nil {
		return nil, fmt.Errorf("%w: month must be YYYY-MM", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.DayEntry
	for date, entry := range cloneEntries(s.entries) {
		if strings.HasPrefix(date, month+"-") {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries, nil
}

func (s *calendarService) MonthSummary(ctx context.Context, month string) (*domain.MonthSummary, error) {
	entries, err := s.ListMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	summary := domain.MonthSummary{
		Month:        month,
		Days:         len(entries),
		Revenue:      decimal.Zero,
		Expenses:     map[string]decimal.Decimal{},
		ExpenseTotal: decimal.Zero,
		Balance:      decimal.Zero,
	}
	for _, entry := range entries {
		summary.Revenue = summary.Revenue.Add(entry.Revenue)
		summary.Clients += entry.Clients
		for category, amount := range entry.Expenses {
			summary.Expenses[category] = summary.Expenses[category].Add(amount)
			summary.ExpenseTotal = summary.ExpenseTotal.Add(amount)
		}
	}
	summary.Balance = summary.Revenue.Sub(summary.ExpenseTotal)
	return &summary, nil
}
