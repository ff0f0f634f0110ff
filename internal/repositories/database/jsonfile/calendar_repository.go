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

// CalendarRepository stores calendar day entries as one JSON snapshot file,
// keyed by "YYYY-MM-DD" date.
type CalendarRepository struct {
	path string
}

// NewCalendarRepository creates a file-backed calendar repository under dataDir.
func NewCalendarRepository(dataDir string) *CalendarRepository {
	return &CalendarRepository{path: filepath.Join(dataDir, "calendar.json")}
}

var _ portsrepo.CalendarRepository = (*CalendarRepository)(nil)

// LoadEntries reads the snapshot; missing or unreadable files load as empty.
func (r *CalendarRepository) LoadEntries(ctx context.Context) (map[string]domain.DayEntry, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]domain.DayEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar snapshot %s: %w", r.path, err)
	}

	var ms map[string]models.DayEntry
	if err := json.Unmarshal(data, &ms); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Calendar snapshot is unreadable, starting with empty calendar",
			slog.String("path", r.path), slog.String("error", err.Error()))
		return map[string]domain.DayEntry{}, nil
	}
	return mapping.ToDomainCalendar(ms), nil
}

// SaveEntries replaces the whole snapshot.
func (r *CalendarRepository) SaveEntries(ctx context.Context, entries map[string]domain.DayEntry) error {
	if err := writeAtomic(r.path, mapping.ToModelCalendar(entries)); err != nil {
		return fmt.Errorf("failed to save calendar snapshot %s: %w", r.path, err)
	}
	return nil
}

// NewRepositoryProvider bundles the file-backed repositories for dataDir.
func NewRepositoryProvider(dataDir string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SavingsRepo:  NewSavingsRepository(dataDir),
		CalendarRepo: NewCalendarRepository(dataDir),
	}
}
