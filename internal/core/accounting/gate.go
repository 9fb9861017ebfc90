package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// RejectionReason identifies why a journal entry draft was refused.
type RejectionReason string

const (
	ReasonEmptyDescription     RejectionReason = "EMPTY_DESCRIPTION"
	ReasonMissingDebitAccount  RejectionReason = "MISSING_DEBIT_ACCOUNT"
	ReasonMissingCreditAccount RejectionReason = "MISSING_CREDIT_ACCOUNT"
	ReasonSameAccount          RejectionReason = "SAME_ACCOUNT"
	ReasonNonPositiveAmount    RejectionReason = "NON_POSITIVE_AMOUNT"
	ReasonMissingDate          RejectionReason = "MISSING_DATE"
)

// EntryRejection is returned by ValidateEntry for a draft that may not enter the ledger.
// It matches apperrors.ErrValidation under errors.Is.
type EntryRejection struct {
	Reason  RejectionReason
	Message string
}

func (e *EntryRejection) Error() string {
	return fmt.Sprintf("entry rejected (%s): %s", e.Reason, e.Message)
}

// Is lets callers treat every rejection as a validation error.
func (e *EntryRejection) Is(target error) bool {
	return target == apperrors.ErrValidation
}

func reject(reason RejectionReason, msg string) *EntryRejection {
	return &EntryRejection{Reason: reason, Message: msg}
}

// ValidateEntry checks a draft against the journal entry invariants and, on success, returns
// the transaction to append. The returned transaction carries no ID or audit fields; those are
// assigned by whoever persists it.
func ValidateEntry(draft domain.EntryDraft) (domain.Transaction, error) {
	description := strings.TrimSpace(draft.Description)
	debitID := strings.TrimSpace(draft.DebitAccountID)
	creditID := strings.TrimSpace(draft.CreditAccountID)

	if description == "" {
		return domain.Transaction{}, reject(ReasonEmptyDescription, "description is required")
	}
	if debitID == "" {
		return domain.Transaction{}, reject(ReasonMissingDebitAccount, "debit account is required")
	}
	if creditID == "" {
		return domain.Transaction{}, reject(ReasonMissingCreditAccount, "credit account is required")
	}
	if debitID == creditID {
		return domain.Transaction{}, reject(ReasonSameAccount, "debit and credit accounts must be different")
	}
	if draft.Amount == nil || !draft.Amount.IsPositive() {
		return domain.Transaction{}, reject(ReasonNonPositiveAmount, "amount must be a positive number")
	}
	if draft.Date.IsZero() {
		return domain.Transaction{}, reject(ReasonMissingDate, "date is required")
	}

	return domain.Transaction{
		Date:            CalendarDate(draft.Date),
		Description:     description,
		DebitAccountID:  debitID,
		CreditAccountID: creditID,
		Amount:          *draft.Amount,
	}, nil
}

// CalendarDate drops the time of day, keeping the calendar date as seen in t's location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
