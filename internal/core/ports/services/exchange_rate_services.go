package services

import (
	"context"

	"github.com/quantleap/refdata/internal/core/domain"
	"github.com/quantleap/refdata/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the current rate between two currencies.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// Convert converts an amount between two currencies using the stored
	// rate, rounding the result to the target currency precision.
	Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResponse, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange-rate service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
