package services

import (
	"context"

	"github.com/ppapp/personal_finance_app/internal/core/domain"
	"github.com/ppapp/personal_finance_app/internal/dto"
)

// CalendarSvcFacade manages daily revenue/expense entries. The day balance is
// derived server-side on every save.
type CalendarSvcFacade interface {
	SaveDayEntry(ctx context.Context, date string, req dto.SaveDayEntryRequest) (*domain.DayEntry, error)
	GetDayEntry(ctx context.Context, date string) (*domain.DayEntry, error)
	ListMonth(ctx context.Context, month string) ([]domain.DayEntry, error)
	MonthSummary(ctx context.Context, month string) (*domain.MonthSummary, error)
}
