package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ppapp/personal_finance_app/internal/core/domain"
	portsrepo "github.com/ppapp/personal_finance_app/internal/core/ports/repositories"
	"github.com/ppapp/personal_finance_app/internal/middleware"
	"github.com/ppapp/personal_finance_app/internal/models"
	"github.com/ppapp/personal_finance_app/internal/utils/mapping"
)

// SavingsRepository stores the savings ledger as one JSON snapshot file using
// the legacy goal-list wire format, so blobs exported by earlier releases
// import as-is.
type SavingsRepository struct {
	path string
}

// NewSavingsRepository creates a file-backed savings repository under dataDir.
func NewSavingsRepository(dataDir string) *SavingsRepository {
	return &SavingsRepository{path: filepath.Join(dataDir, "savings.json")}
}

var _ portsrepo.SavingsRepository = (*SavingsRepository)(nil)

// LoadGoals reads the snapshot. A missing file is first-run empty state; an
// unreadable one is logged and treated as empty rather than blocking startup.
func (r *SavingsRepository) LoadGoals(ctx context.Context) ([]domain.Goal, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Goal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read savings snapshot %s: %w", r.path, err)
	}

	var ms []models.Goal
	if err := json.Unmarshal(data, &ms); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Savings snapshot is unreadable, starting with empty ledger",
			slog.String("path", r.path), slog.String("error", err.Error()))
		return []domain.Goal{}, nil
	}

	goals, err := mapping.ToDomainGoals(ms)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Savings snapshot has invalid records, starting with empty ledger",
			slog.String("path", r.path), slog.String("error", err.Error()))
		return []domain.Goal{}, nil
	}
	return goals, nil
}

// SaveGoals replaces the whole snapshot.
func (r *SavingsRepository) SaveGoals(ctx context.Context, goals []domain.Goal) error {
	if err := writeAtomic(r.path, mapping.ToModelGoals(goals)); err != nil {
		return fmt.Errorf("failed to save savings snapshot %s: %w", r.path, err)
	}
	return nil
}
