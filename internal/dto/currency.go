package dto

import (
	"github.com/quantleap/refdata/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
	Precision    uint8  `json:"precision" binding:"lte=18"`
	ISO4217      uint16 `json:"iso4217"`
	Name         string `json:"name" binding:"required"`
	CurrencyType string `json:"currencyType" binding:"required,oneof=FIAT CRYPTO"`
}

// CurrencyResponse defines the data returned for a currency. It carries
// exactly the five descriptor fields, so a response round-trips the value
// without loss.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Precision    uint8  `json:"precision"`
	ISO4217      uint16 `json:"iso4217"`
	Name         string `json:"name"`
	CurrencyType string `json:"currencyType"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.Code(),
		Precision:    c.Precision(),
		ISO4217:      c.ISO4217(),
		Name:         c.Name(),
		CurrencyType: c.Type().String(),
	}
}

// ToListCurrencyResponse converts a slice of domain currencies to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}
