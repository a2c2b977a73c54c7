package mapping

import (
	"fmt"

	"github.com/quantleap/refdata/internal/core/domain"
	"github.com/quantleap/refdata/internal/models"
)

// ToModelCurrency converts a domain Currency value plus its audit metadata
// into a database row.
func ToModelCurrency(d domain.Currency, audit domain.AuditFields) models.Currency {
	return models.Currency{
		CurrencyCode: d.Code(),
		Precision:    d.Precision(),
		ISO4217:      d.ISO4217(),
		Name:         d.Name(),
		CurrencyType: d.Type().String(),
		AuditFields:  ToModelAuditFields(audit),
	}
}

// ToDomainCurrency converts a database row back into the domain value.
// The stored currency type must be a known enum name; a row that fails to
// parse indicates data corruption, not user error.
func ToDomainCurrency(m models.Currency) (domain.Currency, error) {
	currencyType, err := domain.ParseCurrencyType(m.CurrencyType)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("currency row %s: %w", m.CurrencyCode, err)
	}
	return domain.NewCurrency(m.CurrencyCode, m.Precision, m.ISO4217, m.Name, currencyType), nil
}

// ToDomainCurrencySlice converts a slice of currency rows to domain values.
func ToDomainCurrencySlice(ms []models.Currency) ([]domain.Currency, error) {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		d, err := ToDomainCurrency(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
