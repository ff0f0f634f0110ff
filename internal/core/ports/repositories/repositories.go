package repositories

// RepositoryProvider bundles the repository implementations a storage backend
// exposes, so service wiring stays independent of the chosen backend.
type RepositoryProvider struct {
	SavingsRepo  SavingsRepository
	CalendarRepo CalendarRepository
}
