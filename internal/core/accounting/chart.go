package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// NormalizeAccount trims the account's text fields, fills in the default role and normal
// balance, and checks that the type, role and normal balance fit together.
// CAPITAL and DRAWINGS need an EQUITY account, COGS needs an EXPENSE account, and a DRAWINGS
// account always carries a DEBIT normal balance.
func NormalizeAccount(acc domain.Account) (domain.Account, error) {
	acc.Name = strings.TrimSpace(acc.Name)
	acc.Description = strings.TrimSpace(acc.Description)
	if acc.Name == "" {
		return domain.Account{}, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !acc.AccountType.IsValid() {
		return domain.Account{}, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, acc.AccountType)
	}

	if acc.Role == "" {
		acc.Role = domain.RoleNone
	}
	if !acc.Role.IsValid() {
		return domain.Account{}, fmt.Errorf("%w: invalid account role %q", apperrors.ErrValidation, acc.Role)
	}
	switch acc.Role {
	case domain.RoleCapital, domain.RoleDrawings:
		if acc.AccountType != domain.Equity {
			return domain.Account{}, fmt.Errorf("%w: role %s requires an EQUITY account", apperrors.ErrValidation, acc.Role)
		}
	case domain.RoleCOGS:
		if acc.AccountType != domain.Expense {
			return domain.Account{}, fmt.Errorf("%w: role %s requires an EXPENSE account", apperrors.ErrValidation, acc.Role)
		}
	}

	if acc.NormalBalance == "" {
		acc.NormalBalance = domain.DefaultNormalBalance(acc.AccountType)
		if acc.Role == domain.RoleDrawings {
			acc.NormalBalance = domain.Debit
		}
	}
	if !acc.NormalBalance.IsValid() {
		return domain.Account{}, fmt.Errorf("%w: invalid normal balance %q", apperrors.ErrValidation, acc.NormalBalance)
	}
	if acc.Role == domain.RoleDrawings && acc.NormalBalance != domain.Debit {
		return domain.Account{}, fmt.Errorf("%w: a drawings account must carry a DEBIT normal balance", apperrors.ErrValidation)
	}
	return acc, nil
}
