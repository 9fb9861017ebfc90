package domain

import "time"

// AuditFields holds creation metadata for ledger records.
// Ledger records are never updated, so there is no last-updated pair.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // UserID Reference
}
