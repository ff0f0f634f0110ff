package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ppapp/personal_finance_app/internal/core/ports/repositories"
)

// NewRepositoryProvider bundles the PostgreSQL-backed repositories.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SavingsRepo:  NewSavingsRepository(pool),
		CalendarRepo: NewCalendarRepository(pool),
	}
}
