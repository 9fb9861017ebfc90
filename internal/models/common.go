package models

import "time"

// AuditFields holds the creation stamp every ledger row carries.
// Rows are never updated so there are no last-updated columns.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
