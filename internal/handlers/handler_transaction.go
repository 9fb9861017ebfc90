package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reasonUnknownAccount is reported by the dry run when a referenced account does not exist.
const reasonUnknownAccount = "UNKNOWN_ACCOUNT"

// transactionHandler handles HTTP requests for journal entries.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// RegisterTransactionRoutes registers routes related to journal entries
func RegisterTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &transactionHandler{ledgerService: ledgerService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.postTransaction)
		transactions.POST("/validate", h.validateTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
	}
}

// postTransaction godoc
// @Summary Post a journal entry
// @Description Validates the entry and appends it to the ledger. Posted entries are never edited or deleted.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Journal entry"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Entry rejected, with a reason code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	draft, ok := bindDraft(c, logger)
	if !ok {
		return
	}

	txn, err := h.ledgerService.PostEntry(c.Request.Context(), draft, userID)
	if err != nil {
		respondError(c, logger, err, "post transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// validateTransaction godoc
// @Summary Dry-run a journal entry
// @Description Runs the ledger checks without posting, so a form can warn before submit.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Journal entry"
// @Success 200 {object} dto.ValidateEntryResponse
// @Failure 400 {object} map[string]string "Malformed request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /transactions/validate [post]
func (h *transactionHandler) validateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	draft, ok := bindDraft(c, logger)
	if !ok {
		return
	}

	err := h.ledgerService.CheckEntry(c.Request.Context(), draft)
	var rejection *accounting.EntryRejection
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.ValidateEntryResponse{Valid: true})
	case errors.As(err, &rejection):
		c.JSON(http.StatusOK, dto.ValidateEntryResponse{Reason: string(rejection.Reason), Message: rejection.Message})
	case errors.Is(err, services.ErrUnknownAccount):
		c.JSON(http.StatusOK, dto.ValidateEntryResponse{Reason: reasonUnknownAccount, Message: err.Error()})
	default:
		respondError(c, logger, err, "validate transaction")
	}
}

// listTransactions godoc
// @Summary List posted transactions
// @Description Optionally bounded by an inclusive date range.
// @Tags transactions
// @Produce json
// @Param fromDate query string false "First date (YYYY-MM-DD)"
// @Param toDate query string false "Last date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("transactionID")))

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondError(c, logger, err, "get transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func bindDraft(c *gin.Context, logger *slog.Logger) (domain.EntryDraft, bool) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return domain.EntryDraft{}, false
	}
	draft, err := req.ToEntryDraft()
	if err != nil {
		respondError(c, logger, err, "read transaction")
		return domain.EntryDraft{}, false
	}
	return draft, true
}
