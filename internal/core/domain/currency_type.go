package domain

import (
	"fmt"
	"strings"
)

// CurrencyType classifies a currency's settlement and regulatory treatment.
type CurrencyType uint8

const (
	// Fiat is a government-issued currency (has an ISO 4217 numeric code).
	Fiat CurrencyType = iota
	// Crypto is a cryptographic asset (no ISO 4217 numeric code).
	Crypto
)

// String returns the canonical uppercase name of the currency type.
func (t CurrencyType) String() string {
	switch t {
	case Fiat:
		return "FIAT"
	case Crypto:
		return "CRYPTO"
	default:
		return fmt.Sprintf("CurrencyType(%d)", uint8(t))
	}
}

// ParseCurrencyType converts a textual currency type into its enum value.
// Matching is case-insensitive.
func ParseCurrencyType(s string) (CurrencyType, error) {
	switch strings.ToUpper(s) {
	case "FIAT":
		return Fiat, nil
	case "CRYPTO":
		return Crypto, nil
	default:
		return 0, fmt.Errorf("unknown currency type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so the type serializes
// as its name in JSON payloads.
func (t CurrencyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *CurrencyType) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrencyType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
