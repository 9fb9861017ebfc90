package ledgerfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	numFields     = 5
	colDate       = 0
	colDesc       = 1
	colDebit      = 2
	colCredit     = 3
	colAmount     = 4
	dateLayout    = "2006-01-02"
	rowIDTemplate = "row-%d"
)

// TransactionHeader is the required first line of a journal CSV.
var TransactionHeader = []string{"date", "description", "debit_account_id", "credit_account_id", "amount"}

// RowError locates a problem in a journal CSV. Row numbers count the header as row 1.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ReadTransactions parses a journal CSV. Every row passes through the ledger gate, so a
// rejected row surfaces as a *RowError wrapping the *accounting.EntryRejection.
// Rows get stable IDs derived from their row number.
func ReadTransactions(r io.Reader) ([]domain.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return []domain.Transaction{}, nil
	}
	if !isHeader(records[0]) {
		return nil, &RowError{Row: 1, Err: fmt.Errorf("expected header %s", strings.Join(TransactionHeader, ","))}
	}

	txns := make([]domain.Transaction, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := i + 2
		draft, err := unmarshalDraft(rec)
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}
		txn, err := accounting.ValidateEntry(draft)
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}
		txn.TransactionID = fmt.Sprintf(rowIDTemplate, row)
		txns = append(txns, txn)
	}
	return txns, nil
}

// LoadTransactions reads a journal CSV from disk.
func LoadTransactions(path string) ([]domain.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transactions: %w", err)
	}
	defer f.Close()
	return ReadTransactions(f)
}

// WriteTransactions writes transactions as a journal CSV.
func WriteTransactions(w io.Writer, txns []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TransactionHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, txn := range txns {
		rec := []string{txn.Date.Format(dateLayout), txn.Description, txn.DebitAccountID, txn.CreditAccountID, txn.Amount.String()}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CheckReferences reports the first transaction that names an account missing from the chart.
func CheckReferences(accounts []domain.Account, txns []domain.Transaction) error {
	known := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		known[acc.AccountID] = true
	}
	for _, txn := range txns {
		for _, id := range []string{txn.DebitAccountID, txn.CreditAccountID} {
			if !known[id] {
				return fmt.Errorf("%s: %w: unknown account %q", txn.TransactionID, apperrors.ErrValidation, id)
			}
		}
	}
	return nil
}

func isHeader(rec []string) bool {
	for i, name := range TransactionHeader {
		if strings.ToLower(strings.TrimSpace(rec[i])) != name {
			return false
		}
	}
	return true
}

// unmarshalDraft converts a CSV row into a draft. Blank date and amount cells stay empty so
// the gate reports them with its own reason codes.
func unmarshalDraft(rec []string) (domain.EntryDraft, error) {
	draft := domain.EntryDraft{
		Description:     rec[colDesc],
		DebitAccountID:  strings.TrimSpace(rec[colDebit]),
		CreditAccountID: strings.TrimSpace(rec[colCredit]),
	}

	if raw := strings.TrimSpace(rec[colDate]); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domain.EntryDraft{}, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", apperrors.ErrValidation, raw)
		}
		draft.Date = d
	}

	if raw := strings.TrimSpace(rec[colAmount]); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.EntryDraft{}, fmt.Errorf("%w: parsing amount %q", apperrors.ErrValidation, raw)
		}
		draft.Amount = &amount
	}
	return draft, nil
}
