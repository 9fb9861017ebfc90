// Package ledgerfile reads and writes the flat-file books used by the offline ledgerctl tool:
// a chart of accounts in YAML and journal entries in CSV.
package ledgerfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// ChartFile is the on-disk layout of a chart of accounts.
type ChartFile struct {
	Accounts []ChartAccount `yaml:"accounts"`
}

// ChartAccount is one account entry in a chart file.
type ChartAccount struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	NormalBalance string `yaml:"normal_balance,omitempty"` // defaults from type
	Role          string `yaml:"role,omitempty"`
	Description   string `yaml:"description,omitempty"`
}

// ReadChart decodes a YAML chart and applies the same account rules as the API.
// Account IDs must be present and unique.
func ReadChart(r io.Reader) ([]domain.Account, error) {
	var file ChartFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Account{}, nil
		}
		return nil, fmt.Errorf("parsing chart: %w", err)
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	seen := make(map[string]bool, len(file.Accounts))
	for i, ca := range file.Accounts {
		if ca.ID == "" {
			return nil, fmt.Errorf("account %d: id is required", i+1)
		}
		if seen[ca.ID] {
			return nil, fmt.Errorf("account %d: duplicate id %q", i+1, ca.ID)
		}
		seen[ca.ID] = true

		acc, err := accounting.NormalizeAccount(domain.Account{
			AccountID:     ca.ID,
			Name:          ca.Name,
			AccountType:   domain.AccountType(ca.Type),
			NormalBalance: domain.BalanceSide(ca.NormalBalance),
			Role:          domain.AccountRole(ca.Role),
			Description:   ca.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", ca.ID, err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// LoadChart reads a chart file from disk.
func LoadChart(path string) ([]domain.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}
	return ReadChart(bytes.NewReader(data))
}

// WriteChart encodes accounts as a YAML chart.
func WriteChart(w io.Writer, accounts []domain.Account) error {
	file := ChartFile{Accounts: make([]ChartAccount, len(accounts))}
	for i, acc := range accounts {
		file.Accounts[i] = ChartAccount{
			ID:            acc.AccountID,
			Name:          acc.Name,
			Type:          string(acc.AccountType),
			NormalBalance: string(acc.NormalBalance),
			Description:   acc.Description,
		}
		if acc.Role != domain.RoleNone {
			file.Accounts[i].Role = string(acc.Role)
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("marshaling chart: %w", err)
	}
	return enc.Close()
}

// SaveChart writes a chart file to disk.
func SaveChart(path string, accounts []domain.Account) error {
	var buf bytes.Buffer
	if err := WriteChart(&buf, accounts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

// DefaultChart returns a starter chart for a small trading business.
func DefaultChart() []domain.Account {
	acc := func(id, name string, t domain.AccountType, role domain.AccountRole, desc string) domain.Account {
		normal := domain.DefaultNormalBalance(t)
		if role == domain.RoleDrawings {
			normal = domain.Debit
		}
		return domain.Account{AccountID: id, Name: name, AccountType: t, NormalBalance: normal, Role: role, Description: desc}
	}
	return []domain.Account{
		acc("1000", "Cash", domain.Asset, domain.RoleNone, "Cash on hand and in bank"),
		acc("1100", "Accounts Receivable", domain.Asset, domain.RoleNone, "Amounts owed by customers"),
		acc("1200", "Inventory", domain.Asset, domain.RoleNone, "Goods held for sale"),
		acc("2000", "Accounts Payable", domain.Liability, domain.RoleNone, "Amounts owed to suppliers"),
		acc("3000", domain.CapitalAccountName, domain.Equity, domain.RoleCapital, "Owner investment"),
		acc("3100", domain.DrawingsAccountName, domain.Equity, domain.RoleDrawings, "Owner withdrawals"),
		acc("4000", "Sales Revenue", domain.Revenue, domain.RoleNone, "Income from sales"),
		acc("5000", domain.COGSAccountName, domain.Expense, domain.RoleCOGS, "Direct cost of goods sold"),
		acc("6000", "Rent Expense", domain.Expense, domain.RoleNone, ""),
		acc("6100", "Salaries Expense", domain.Expense, domain.RoleNone, ""),
	}
}
