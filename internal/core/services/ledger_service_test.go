package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccounts *MockAccountRepository
	mockTxns     *MockTransactionRepository
	service      portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockTxns = new(MockTransactionRepository)
	suite.service = services.NewLedgerService(suite.mockAccounts, suite.mockTxns,
		services.WithLedgerClock(func() time.Time { return fixedNow }))
}

func validDraft() domain.EntryDraft {
	amount := decimal.RequireFromString("1250.00")
	return domain.EntryDraft{
		Date:            time.Date(2024, 3, 14, 15, 4, 5, 0, time.UTC),
		Description:     "Cash sale",
		DebitAccountID:  "cash",
		CreditAccountID: "sales",
		Amount:          &amount,
	}
}

func knownAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		"cash":  {AccountID: "cash", Name: "Cash", AccountType: domain.Asset},
		"sales": {AccountID: "sales", Name: "Sales Revenue", AccountType: domain.Revenue},
	}
}

func (suite *LedgerServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()

	suite.mockTxns.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAccounts.On("FindAccountsByIDsForShare", ctx, mock.Anything, []string{"cash", "sales"}).Return(knownAccounts(), nil).Once()
	suite.mockTxns.On("AppendTransaction", ctx, mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionID != "" &&
			txn.Date.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)) &&
			txn.CreatedBy == "user-1" &&
			txn.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	suite.mockTxns.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockTxns.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	txn, err := suite.service.PostEntry(ctx, validDraft(), "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("Cash sale", txn.Description)
	suite.True(decimal.RequireFromString("1250").Equal(txn.Amount))
	suite.mockTxns.AssertExpectations(suite.T())
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_RejectedByGate() {
	draft := validDraft()
	draft.CreditAccountID = draft.DebitAccountID

	txn, err := suite.service.PostEntry(context.Background(), draft, "user-1")

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	var rejection *accounting.EntryRejection
	suite.Require().True(errors.As(err, &rejection))
	suite.Equal(accounting.ReasonSameAccount, rejection.Reason)
	suite.mockTxns.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_UnknownAccount() {
	ctx := context.Background()
	onlyCash := map[string]domain.Account{"cash": knownAccounts()["cash"]}

	suite.mockTxns.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAccounts.On("FindAccountsByIDsForShare", ctx, mock.Anything, []string{"cash", "sales"}).Return(onlyCash, nil).Once()
	suite.mockTxns.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	txn, err := suite.service.PostEntry(ctx, validDraft(), "user-1")

	suite.Nil(txn)
	suite.ErrorIs(err, services.ErrUnknownAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxns.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxns.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_AppendFails() {
	ctx := context.Background()

	suite.mockTxns.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAccounts.On("FindAccountsByIDsForShare", ctx, mock.Anything, mock.Anything).Return(knownAccounts(), nil).Once()
	suite.mockTxns.On("AppendTransaction", ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()
	suite.mockTxns.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	txn, err := suite.service.PostEntry(ctx, validDraft(), "user-1")

	suite.Nil(txn)
	suite.ErrorIs(err, assert.AnError)
	suite.mockTxns.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCheckEntry() {
	ctx := context.Background()
	suite.mockAccounts.On("FindAccountsByIDs", ctx, []string{"cash", "sales"}).Return(knownAccounts(), nil).Once()

	suite.NoError(suite.service.CheckEntry(ctx, validDraft()))

	blank := validDraft()
	blank.Description = " "
	err := suite.service.CheckEntry(ctx, blank)
	var rejection *accounting.EntryRejection
	suite.Require().True(errors.As(err, &rejection))
	suite.Equal(accounting.ReasonEmptyDescription, rejection.Reason)
	suite.mockTxns.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_DateFilter() {
	ctx := context.Background()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	expected := []domain.Transaction{{TransactionID: "t1"}}

	suite.mockTxns.On("ListTransactions", ctx, portsrepo.TransactionFilter{From: &from, AsOf: &to}).Return(expected, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{FromDate: "2024-01-01", ToDate: "2024-01-31"})

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_InvertedRange() {
	_, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{FromDate: "2024-02-01", ToDate: "2024-01-31"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListTransactionsByAccount_DefaultLimit() {
	ctx := context.Background()
	suite.mockAccounts.On("FindAccountByID", ctx, "cash").Return(&domain.Account{AccountID: "cash"}, nil).Once()
	suite.mockTxns.On("ListTransactionsByAccount", ctx, "cash", 20, (*string)(nil)).
		Return([]domain.Transaction{{TransactionID: "t1", Amount: decimal.NewFromInt(5)}}, "next-page", nil).Once()

	resp, err := suite.service.ListTransactionsByAccount(ctx, "cash", dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page", *resp.NextToken)
}

func (suite *LedgerServiceTestSuite) TestListTransactionsByAccount_UnknownAccount() {
	ctx := context.Background()
	suite.mockAccounts.On("FindAccountByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.ListTransactionsByAccount(ctx, "ghost", dto.ListTransactionsParams{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
