package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cashflow-service/internal/api_gateway/service"
	"github.com/cashflow-service/internal/domain/cashflow"
	"github.com/cashflow-service/internal/domain/shared"
)

// CashFlowHandler handles HTTP requests for cash flow reporting operations
type CashFlowHandler struct {
	cashFlowService service.CashFlowService
	logger          *slog.Logger
}

// NewCashFlowHandler creates a new cash flow reporting handler
func NewCashFlowHandler(logger *slog.Logger, cashFlowService service.CashFlowService) *CashFlowHandler {
	return &CashFlowHandler{
		cashFlowService: cashFlowService,
		logger:          logger,
	}
}

// GetStatement generates a cash flow statement for the requested period
func (h *CashFlowHandler) GetStatement(c *gin.Context) {
	start, ok := dateQueryParam(c, "startDate")
	if !ok {
		return
	}
	end, ok := dateQueryParam(c, "endDate")
	if !ok {
		return
	}
	openingBalance, ok := decimalQueryParam(c, "openingBalance")
	if !ok {
		return
	}

	statement, err := h.cashFlowService.GetStatement(c.Request.Context(), start, end, openingBalance)
	if err != nil {
		if errors.Is(err, cashflow.ErrInvalidDateRange) {
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to generate statement", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, statement)
}

// GetCurrentBalance computes the balance as of yesterday from an opening position
func (h *CashFlowHandler) GetCurrentBalance(c *gin.Context) {
	openingBalanceDate, ok := dateQueryParam(c, "openingBalanceDate")
	if !ok {
		return
	}
	openingBalance, ok := decimalQueryParam(c, "openingBalance")
	if !ok {
		return
	}

	balance, err := h.cashFlowService.GetCurrentBalance(c.Request.Context(), openingBalanceDate, openingBalance)
	if err != nil {
		if errors.Is(err, cashflow.ErrInvalidDateRange) {
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to compute current balance", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, CurrentBalanceResponse{Balance: balance})
}

// GetForecast projects the cash balance over the coming days
func (h *CashFlowHandler) GetForecast(c *gin.Context) {
	daysAheadParam := c.Query("daysAhead")
	daysAhead, err := strconv.Atoi(daysAheadParam)
	if err != nil {
		RespondBadRequest(c, "Invalid daysAhead: must be an integer")
		return
	}
	currentBalance, ok := decimalQueryParam(c, "currentBalance")
	if !ok {
		return
	}

	forecast, err := h.cashFlowService.GetForecast(c.Request.Context(), daysAhead, currentBalance)
	if err != nil {
		if errors.Is(err, cashflow.ErrInvalidDaysAhead) {
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to generate forecast", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, forecast)
}

// ListReports lists recently archived reports, newest first
func (h *CashFlowHandler) ListReports(c *gin.Context) {
	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			RespondBadRequest(c, "Invalid limit: must be an integer")
			return
		}
		limit = parsed
	}

	reports, err := h.cashFlowService.ListArchivedReports(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list archived reports", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, ReportListResponse{Reports: reports})
}

// dateQueryParam parses a required ISO date query parameter, responding with
// 400 and returning ok=false when absent or malformed.
func dateQueryParam(c *gin.Context, name string) (shared.Date, bool) {
	value := c.Query(name)
	if value == "" {
		RespondBadRequest(c, "Missing required parameter: "+name)
		return shared.Date{}, false
	}
	d, err := shared.ParseDate(value)
	if err != nil {
		RespondBadRequest(c, "Invalid "+name+": expected format "+shared.DateLayout)
		return shared.Date{}, false
	}
	return d, true
}

// decimalQueryParam parses a required decimal query parameter, responding
// with 400 and returning ok=false when absent or malformed.
func decimalQueryParam(c *gin.Context, name string) (decimal.Decimal, bool) {
	value := c.Query(name)
	if value == "" {
		RespondBadRequest(c, "Missing required parameter: "+name)
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		RespondBadRequest(c, "Invalid "+name+": expected a decimal number")
		return decimal.Decimal{}, false
	}
	return d, true
}
