package domain

import (
	"fmt"

	"github.com/quantleap/refdata/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money pairs a decimal amount with the Currency it is denominated in.
// Like Currency it is an immutable value: operations return new values
// and never modify the receiver.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney constructs a Money, rounding the amount half-up to the
// currency's precision.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{
		amount:   amount.Round(int32(currency.Precision())),
		currency: currency,
	}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency the amount is denominated in.
func (m Money) Currency() Currency { return m.currency }

// Add returns m + other. Both amounts must share the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s",
			apperrors.ErrCurrencyMismatch, other.currency.Code(), m.currency.Code())
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m - other. Both amounts must share the same currency.
func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: cannot subtract %s from %s",
			apperrors.ErrCurrencyMismatch, other.currency.Code(), m.currency.Code())
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Neg returns the amount negated.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal reports whether both values share the same currency and represent
// the same amount. decimal equality ignores exponent differences, so
// "2.50" and "2.5" compare equal.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String formats the amount to the currency precision followed by the
// currency code, e.g. "42.50 USD".
func (m Money) String() string {
	return m.amount.StringFixed(int32(m.currency.Precision())) + " " + m.currency.Code()
}
