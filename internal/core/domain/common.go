package domain

import "time"

// AuditFields holds standard audit information for persisted entities.
// Pure value types (Currency, Money) do not carry them; only records
// that live in the database do.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
