package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ppapp/personal_finance_app/internal/core/domain"
	portsrepo "github.com/ppapp/personal_finance_app/internal/core/ports/repositories"
	"github.com/ppapp/personal_finance_app/internal/middleware"
	"github.com/ppapp/personal_finance_app/internal/models"
	"github.com/ppapp/personal_finance_app/internal/utils/mapping"
)

const calendarBlobKey = "calendar"

type PgxCalendarRepository struct {
	pool *pgxpool.Pool
}

// NewCalendarRepository creates a new repository for the calendar blob.
func NewCalendarRepository(pool *pgxpool.Pool) *PgxCalendarRepository {
	return &PgxCalendarRepository{pool: pool}
}

var _ portsrepo.CalendarRepository = (*PgxCalendarRepository)(nil)

// LoadEntries fetches the calendar blob; no row or an undecodable payload
// loads as empty state.
func (r *PgxCalendarRepository) LoadEntries(ctx context.Context) (map[string]domain.DayEntry, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM state_blobs WHERE key = $1`, calendarBlobKey,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return map[string]domain.DayEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar blob: %w", err)
	}

	var ms map[string]models.DayEntry
	if err := json.Unmarshal(payload, &ms); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Calendar blob is undecodable, starting with empty calendar",
			slog.String("error", err.Error()))
		return map[string]domain.DayEntry{}, nil
	}
	return mapping.ToDomainCalendar(ms), nil
}

// SaveEntries upserts the whole calendar blob. Last write wins.
func (r *PgxCalendarRepository) SaveEntries(ctx context.Context, entries map[string]domain.DayEntry) error {
	payload, err := json.Marshal(mapping.ToModelCalendar(entries))
	if err != nil {
		return fmt.Errorf("failed to encode calendar blob: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO state_blobs (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now();
	`, calendarBlobKey, payload)
	if err != nil {
		return fmt.Errorf("failed to save calendar blob: %w", err)
	}
	return nil
}
