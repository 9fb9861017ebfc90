package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in requests and responses.
const DateLayout = "2006-01-02"

// CreateTransactionRequest is the journal entry form.
// Field presence rules are enforced by the ledger gate so that every rejection carries a reason.
type CreateTransactionRequest struct {
	Date            string           `json:"date" binding:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD
	Description     string           `json:"description"`
	DebitAccountID  string           `json:"debitAccountID"`
	CreditAccountID string           `json:"creditAccountID"`
	Amount          *decimal.Decimal `json:"amount" swaggertype:"string"`
}

// ToEntryDraft converts the form into a draft for the ledger gate.
func (r CreateTransactionRequest) ToEntryDraft() (domain.EntryDraft, error) {
	draft := domain.EntryDraft{
		Description:     r.Description,
		DebitAccountID:  r.DebitAccountID,
		CreditAccountID: r.CreditAccountID,
		Amount:          r.Amount,
	}
	if strings.TrimSpace(r.Date) != "" {
		d, err := time.Parse(DateLayout, strings.TrimSpace(r.Date))
		if err != nil {
			return domain.EntryDraft{}, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", apperrors.ErrValidation, r.Date)
		}
		draft.Date = d
	}
	return draft, nil
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Date:            txn.Date.Format(DateLayout),
		Description:     txn.Description,
		DebitAccountID:  txn.DebitAccountID,
		CreditAccountID: txn.CreditAccountID,
		Amount:          txn.Amount,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
	FromDate  string  `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate    string  `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ValidateEntryResponse is the dry-run answer used by the journal entry form for inline warnings.
type ValidateEntryResponse struct {
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}
