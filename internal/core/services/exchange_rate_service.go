package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quantleap/refdata/internal/apperrors"
	"github.com/quantleap/refdata/internal/core/domain"
	portsrepo "github.com/quantleap/refdata/internal/core/ports/repositories"
	portssvc "github.com/quantleap/refdata/internal/core/ports/services"
	"github.com/quantleap/refdata/internal/dto"
	"github.com/quantleap/refdata/internal/middleware"
	"github.com/quantleap/refdata/internal/utils"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for exchange rates and
// currency conversion.
type ExchangeRateService struct {
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService portssvc.CurrencyReaderSvc) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error) {
	// Code format is enforced by DTO binding tags.
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	// Both currencies must exist.
	if _, err := s.currencyService.GetCurrencyByCode(ctx, req.FromCurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'from' currency code '%s' not found", apperrors.ErrValidation, req.FromCurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate 'from' currency '%s': %w", req.FromCurrencyCode, err)
	}
	if _, err := s.currencyService.GetCurrencyByCode(ctx, req.ToCurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'to' currency code '%s' not found", apperrors.ErrValidation, req.ToCurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate 'to' currency '%s': %w", req.ToCurrencyCode, err)
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Rate:             req.Rate,
		DateEffective:    req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	return &rate, nil
}

// GetExchangeRate retrieves the current exchange rate for a currency pair.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// Convert applies the stored rate for the requested pair to the given
// amount. The result is denominated in the target currency and rounded to
// its precision.
func (s *ExchangeRateService) Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResponse, error) {
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	toCurrency, err := s.currencyService.GetCurrencyByCode(ctx, req.ToCurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'to' currency code '%s' not found", apperrors.ErrValidation, req.ToCurrencyCode)
		}
		return nil, fmt.Errorf("failed to resolve 'to' currency '%s': %w", req.ToCurrencyCode, err)
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, req.FromCurrencyCode, req.ToCurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find rate %s->%s: %w", req.FromCurrencyCode, req.ToCurrencyCode, err)
	}

	converted := domain.NewMoney(req.Amount.Mul(rate.Rate), toCurrency)

	middleware.GetLoggerFromCtx(ctx).Debug("converted amount",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("amount", utils.FormatWithCurrencyPrecision(converted.Amount(), toCurrency)),
	)

	return &dto.ConvertResponse{
		FromAmount:       req.Amount,
		FromCurrencyCode: req.FromCurrencyCode,
		ToAmount:         converted.Amount(),
		ToCurrencyCode:   converted.Currency().Code(),
		Rate:             rate.Rate,
	}, nil
}
