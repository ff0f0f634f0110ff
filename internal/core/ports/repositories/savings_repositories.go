package repositories

import (
	"context"

	"github.com/ppapp/personal_finance_app/internal/core/domain"
)

// SavingsRepository is the whole-blob persistence port for the savings ledger.
// Save replaces the entire stored state; there are no partial writes and the
// last write wins. LoadGoals must treat a missing or unreadable blob as empty
// state (logged, not fatal) so a corrupted store never blocks startup.
type SavingsRepository interface {
	LoadGoals(ctx context.Context) ([]domain.Goal, error)
	SaveGoals(ctx context.Context, goals []domain.Goal) error
}
