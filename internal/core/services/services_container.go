package services

import (
	"context"

	portsrepo "github.com/ppapp/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ppapp/personal_finance_app/internal/core/ports/services"
)

// NewServiceContainer hydrates every service from the configured storage
// backend. Hydration failures abort startup; runtime persistence failures are
// per-operation and surfaced via apperrors.ErrPersistence.
func NewServiceContainer(ctx context.Context, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	savings, err := NewSavingsService(ctx, repos.SavingsRepo)
	if err != nil {
		return nil, err
	}

	calendar, err := NewCalendarService(ctx, repos.CalendarRepo)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Savings:  savings,
		Calendar: calendar,
	}, nil
}
