package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	handlerSuite
}

func entryBody() map[string]any {
	return map[string]any{
		"date":            "2024-03-15",
		"description":     "Office supplies",
		"debitAccountID":  "expense-1",
		"creditAccountID": "cash-1",
		"amount":          "150.00",
	}
}

func matchesEntryBody() any {
	return mock.MatchedBy(func(d domain.EntryDraft) bool {
		return d.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) &&
			d.Description == "Office supplies" &&
			d.DebitAccountID == "expense-1" &&
			d.CreditAccountID == "cash-1" &&
			d.Amount != nil && d.Amount.Equal(decimal.RequireFromString("150"))
	})
}

func (suite *TransactionHandlerTestSuite) TestPostTransaction_Success() {
	posted := &domain.Transaction{
		TransactionID:   "t1",
		Date:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description:     "Office supplies",
		DebitAccountID:  "expense-1",
		CreditAccountID: "cash-1",
		Amount:          decimal.RequireFromString("150.00"),
		AuditFields:     domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: testUserID},
	}
	suite.mockLedgerService.On("PostEntry", mock.Anything, matchesEntryBody(), testUserID).Return(posted, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", entryBody())

	suite.assertStatus(w, http.StatusCreated)
	var body dto.TransactionResponse
	suite.decode(w, &body)
	suite.Equal("t1", body.TransactionID)
	suite.Equal("2024-03-15", body.Date)
	suite.True(body.Amount.Equal(decimal.NewFromInt(150)))
}

func (suite *TransactionHandlerTestSuite) TestPostTransaction_RejectedWithReason() {
	rejection := &accounting.EntryRejection{Reason: accounting.ReasonSameAccount, Message: "debit and credit accounts must be different"}
	suite.mockLedgerService.On("PostEntry", mock.Anything, mock.Anything, testUserID).Return(nil, rejection).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", entryBody())

	suite.assertStatus(w, http.StatusBadRequest)
	var body map[string]string
	suite.decode(w, &body)
	suite.Equal(string(accounting.ReasonSameAccount), body["reason"])
	suite.Equal(rejection.Message, body["error"])
}

func (suite *TransactionHandlerTestSuite) TestPostTransaction_UnknownAccount() {
	suite.mockLedgerService.On("PostEntry", mock.Anything, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: cash-1", services.ErrUnknownAccount)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", entryBody())

	suite.assertStatus(w, http.StatusBadRequest)
}

func (suite *TransactionHandlerTestSuite) TestPostTransaction_BadDate() {
	body := entryBody()
	body["date"] = "15/03/2024"

	w := suite.do(http.MethodPost, "/api/v1/transactions", body)

	suite.assertStatus(w, http.StatusBadRequest)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestPostTransaction_StorageFailure() {
	suite.mockLedgerService.On("PostEntry", mock.Anything, mock.Anything, testUserID).
		Return(nil, errors.New("connection reset")).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", entryBody())

	suite.assertStatus(w, http.StatusInternalServerError)
	var body map[string]string
	suite.decode(w, &body)
	suite.Equal("Failed to post transaction", body["error"])
}

func (suite *TransactionHandlerTestSuite) TestValidateTransaction() {
	suite.Run("valid", func() {
		suite.mockLedgerService.On("CheckEntry", mock.Anything, matchesEntryBody()).Return(nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/transactions/validate", entryBody())

		suite.assertStatus(w, http.StatusOK)
		var body dto.ValidateEntryResponse
		suite.decode(w, &body)
		suite.True(body.Valid)
		suite.Empty(body.Reason)
	})

	suite.Run("rejected", func() {
		rejection := &accounting.EntryRejection{Reason: accounting.ReasonNonPositiveAmount, Message: "amount must be a positive number"}
		suite.mockLedgerService.On("CheckEntry", mock.Anything, mock.Anything).Return(rejection).Once()

		w := suite.do(http.MethodPost, "/api/v1/transactions/validate", entryBody())

		suite.assertStatus(w, http.StatusOK)
		var body dto.ValidateEntryResponse
		suite.decode(w, &body)
		suite.False(body.Valid)
		suite.Equal(string(accounting.ReasonNonPositiveAmount), body.Reason)
	})

	suite.Run("unknown account", func() {
		suite.mockLedgerService.On("CheckEntry", mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: cash-1", services.ErrUnknownAccount)).Once()

		w := suite.do(http.MethodPost, "/api/v1/transactions/validate", entryBody())

		suite.assertStatus(w, http.StatusOK)
		var body dto.ValidateEntryResponse
		suite.decode(w, &body)
		suite.False(body.Valid)
		suite.Equal("UNKNOWN_ACCOUNT", body.Reason)
	})
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DateRange() {
	txns := []domain.Transaction{
		{TransactionID: "t2", Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(20)},
		{TransactionID: "t1", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(10)},
	}
	suite.mockLedgerService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.FromDate == "2024-03-01" && p.ToDate == "2024-03-31"
	})).Return(txns, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?fromDate=2024-03-01&toDate=2024-03-31", nil)

	suite.assertStatus(w, http.StatusOK)
	var body dto.ListTransactionsResponse
	suite.decode(w, &body)
	suite.Require().Len(body.Transactions, 2)
	suite.Equal("t2", body.Transactions[0].TransactionID)
	suite.Nil(body.NextToken)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvertedRange() {
	suite.mockLedgerService.On("ListTransactions", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: toDate is before fromDate", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?fromDate=2024-03-31&toDate=2024-03-01", nil)

	suite.assertStatus(w, http.StatusBadRequest)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockLedgerService.On("GetTransactionByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/nope", nil)

	suite.assertStatus(w, http.StatusNotFound)
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
