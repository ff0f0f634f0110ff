// Package pgsql persists whole-state blobs in PostgreSQL, one row per blob
// key in the state_blobs table. The blob payload is the same legacy JSON wire
// format the jsonfile backend writes, so data moves between backends by
// copying the blob.
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

const savingsBlobKey = "savings"

type PgxSavingsRepository struct {
	pool *pgxpool.Pool
}

// NewSavingsRepository creates a new repository for the savings ledger blob.
func NewSavingsRepository(pool *pgxpool.Pool) *PgxSavingsRepository {
	return &PgxSavingsRepository{pool: pool}
}

var _ portsrepo.SavingsRepository = (*PgxSavingsRepository)(nil)

// LoadGoals fetches the savings blob. No row means first-run empty state; an
// undecodable payload is logged and treated as empty.
func (r *PgxSavingsRepository) LoadGoals(ctx context.Context) ([]domain.Goal, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM state_blobs WHERE key = $1`, savingsBlobKey,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return []domain.Goal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load savings blob: %w", err)
	}

	var ms []models.Goal
	if err := json.Unmarshal(payload, &ms); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Savings blob is undecodable, starting with empty ledger",
			slog.String("error", err.Error()))
		return []domain.Goal{}, nil
	}

	goals, err := mapping.ToDomainGoals(ms)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Savings blob has invalid records, starting with empty ledger",
			slog.String("error", err.Error()))
		return []domain.Goal{}, nil
	}
	return goals, nil
}

// SaveGoals upserts the whole savings blob. Last write wins.
func (r *PgxSavingsRepository) SaveGoals(ctx context.Context, goals []domain.Goal) error {
	payload, err := json.Marshal(mapping.ToModelGoals(goals))
	if err != nil {
		return fmt.Errorf("failed to encode savings blob: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO state_blobs (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now();
	`, savingsBlobKey, payload)
	if err != nil {
		return fmt.Errorf("failed to save savings blob: %w", err)
	}
	return nil
}
