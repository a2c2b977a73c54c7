package services

import (
	portsrepo "github.com/quantleap/refdata/internal/core/ports/repositories"
	portssvc "github.com/quantleap/refdata/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
)
