package domain

// Currency is an immutable descriptor of a monetary unit, fiat or crypto.
// It is a pure value type: all fields are unexported and the struct is
// comparable, so == gives structural equality over every field and values
// can be used directly as map keys. Copies are fully independent, holders
// never share mutable state.
type Currency struct {
	code         string
	precision    uint8
	iso4217      uint16
	name         string
	currencyType CurrencyType
}

// NewCurrency constructs a Currency from its five descriptor fields.
// No validation is performed here: any code, precision or ISO number is
// accepted unconditionally. Input checks (code format, precision range)
// belong to the DTO/service boundary, not to the value type.
func NewCurrency(code string, precision uint8, iso4217 uint16, name string, currencyType CurrencyType) Currency {
	return Currency{
		code:         code,
		precision:    precision,
		iso4217:      iso4217,
		name:         name,
		currencyType: currencyType,
	}
}

// Code returns the short uppercase identifier, e.g. "AUD" or "BTC".
func (c Currency) Code() string { return c.code }

// Precision returns the number of fractional decimal digits used when
// formatting or rounding amounts denominated in this currency.
func (c Currency) Precision() uint8 { return c.precision }

// ISO4217 returns the official ISO 4217 numeric code, or 0 when the
// currency has none (crypto assets).
func (c Currency) ISO4217() uint16 { return c.iso4217 }

// Name returns the human-readable display name.
func (c Currency) Name() string { return c.name }

// Type returns the currency classification.
func (c Currency) Type() CurrencyType { return c.currencyType }

// Equal reports whether both values agree on every field. It is the
// same relation as ==; the method form reads better in call chains.
func (c Currency) Equal(other Currency) bool {
	return c == other
}

// IsZero reports whether c is the zero value, i.e. was never constructed.
func (c Currency) IsZero() bool {
	return c == Currency{}
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}
