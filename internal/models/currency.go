package models

// Currency is the database row for a currency descriptor. The audit
// columns are persistence bookkeeping only; they are not part of the
// domain value and never participate in value equality.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Precision    uint8  `json:"precision"`    // Fractional decimal digits
	ISO4217      uint16 `json:"iso4217"`      // 0 when no ISO numeric code exists
	Name         string `json:"name"`         // e.g., "US Dollar"
	CurrencyType string `json:"currencyType"` // "FIAT" or "CRYPTO"
	AuditFields
}
