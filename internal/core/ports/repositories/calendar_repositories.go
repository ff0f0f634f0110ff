package repositories

import (
	"context"

	"github.com/ppapp/personal_finance_app/internal/core/domain"
)

// CalendarRepository is the whole-blob persistence port for calendar day
// entries, keyed by "YYYY-MM-DD" date. Same contract as SavingsRepository:
// atomic whole-blob replace, missing or corrupted blobs load as empty.
type CalendarRepository interface {
	LoadEntries(ctx context.Context) (map[string]domain.DayEntry, error)
	SaveEntries(ctx context.Context, entries map[string]domain.DayEntry) error
}
