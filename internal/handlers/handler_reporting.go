package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/net-profit", h.getNetProfit)
		reportingGroup.GET("/dashboard", h.getDashboard)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance report as of a specific date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateQuery(c, logger, "asOf", time.Now())
	if !ok {
		return
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "generate trial balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb, asOf))
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Revenue, cost of goods sold, gross profit, operating expenses and net profit for a date range.
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := time.Now()
	fromDate, ok := parseDateQuery(c, logger, "fromDate", time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	if !ok {
		return
	}
	toDate, ok := parseDateQuery(c, logger, "toDate", now)
	if !ok {
		return
	}

	if toDate.Before(fromDate) {
		logger.Warn("Invalid date range", slog.Time("from_date", fromDate), slog.Time("to_date", toDate))
		c.JSON(http.StatusBadRequest, gin.H{"error": "toDate must not be before fromDate"})
		return
	}

	stmt, err := h.reportingService.IncomeStatement(c.Request.Context(), fromDate, toDate)
	if err != nil {
		respondError(c, logger, err, "generate income statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(stmt, fromDate, toDate))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Generates a balance sheet as of a specific date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateQuery(c, logger, "asOf", time.Now())
	if !ok {
		return
	}

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "generate balance sheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet, asOf))
}

// getNetProfit godoc
// @Summary Net profit to date
// @Description Revenue less expenses for every transaction dated on or before asOf
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.NetProfitResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/net-profit [get]
func (h *reportingHandler) getNetProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateQuery(c, logger, "asOf", time.Now())
	if !ok {
		return
	}

	netProfit, err := h.reportingService.NetProfit(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "compute net profit")
		return
	}

	c.JSON(http.StatusOK, dto.ToNetProfitResponse(netProfit, asOf))
}

// getDashboard godoc
// @Summary Dashboard summary
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateQuery(c, logger, "asOf", time.Now())
	if !ok {
		return
	}

	sum, err := h.reportingService.Dashboard(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "generate dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(sum, asOf))
}
