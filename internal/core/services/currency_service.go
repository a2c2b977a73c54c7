package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quantleap/refdata/internal/apperrors"
	"github.com/quantleap/refdata/internal/core/domain"
	portsrepo "github.com/quantleap/refdata/internal/core/ports/repositories"
	"github.com/quantleap/refdata/internal/dto"
	"github.com/quantleap/refdata/internal/middleware"
)

// CurrencyService provides business logic for currency reference data.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency validates and persists a new currency. The new value is
// also registered in the in-process registry so collaborators can resolve
// it without a database round trip.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorID string) (domain.Currency, error) {
	// Code format, precision range and type name are enforced by DTO
	// binding; the type parse below cannot fail for bound requests but
	// guards direct callers.
	currencyType, err := domain.ParseCurrencyType(req.CurrencyType)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	_, err = s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err == nil {
		return domain.Currency{}, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, req.CurrencyCode)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.Currency{}, fmt.Errorf("failed to check for existing currency %s: %w", req.CurrencyCode, err)
	}

	currency := domain.NewCurrency(req.CurrencyCode, req.Precision, req.ISO4217, req.Name, currencyType)

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorID,
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency, audit); err != nil {
		return domain.Currency{}, fmt.Errorf("failed to create currency in service: %w", err)
	}

	domain.RegisterCurrency(currency)
	return currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all available currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// SeedBuiltinCurrencies upserts every builtin currency into storage. It is
// called once at startup so a fresh database starts with the common units.
func (s *CurrencyService) SeedBuiltinCurrencies(ctx context.Context, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	for _, currency := range domain.RegisteredCurrencies() {
		if err := s.currencyRepo.SaveCurrency(ctx, currency, audit); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", currency.Code(), err)
		}
		logger.Debug("Seeded currency", slog.String("currency_code", currency.Code()))
	}
	return nil
}
