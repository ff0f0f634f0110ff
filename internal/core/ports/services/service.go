package services

// ServiceContainer holds the service implementations handed to the HTTP
// layer, so route registration depends on interfaces only.
type ServiceContainer struct {
	Savings  SavingsSvcFacade
	Calendar CalendarSvcFacade
}
