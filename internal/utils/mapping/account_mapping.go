package mapping

import (
	"database/sql"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	role := d.Role
	if role == "" {
		role = domain.RoleNone
	}
	return models.Account{
		AccountID:     d.AccountID,
		Name:          d.Name,
		AccountType:   models.AccountType(d.AccountType),
		NormalBalance: string(d.NormalBalance),
		Role:          string(role),
		Description:   sql.NullString{String: d.Description, Valid: d.Description != ""},
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		Name:          m.Name,
		AccountType:   domain.AccountType(m.AccountType),
		NormalBalance: domain.BalanceSide(m.NormalBalance),
		Role:          domain.AccountRole(m.Role),
		Description:   m.Description.String,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
