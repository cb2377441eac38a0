package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statementHandler handles HTTP requests related to financial statements
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{statementService: ss}
}

// registerStatementRoutes registers routes related to financial statements
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	reports := rg.Group("/reports")
	{
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// statementOptions parses the optional currentMonth and taxMode query
// parameters shared by all statement endpoints.
func statementOptions(c *gin.Context) (portssvc.StatementOptions, error) {
	var opts portssvc.StatementOptions

	if s := c.Query("currentMonth"); s != "" {
		month, err := domain.ParseMonth(s)
		if err != nil {
			return opts, err
		}
		opts.CurrentMonth = month
	}
	if s := c.Query("taxMode"); s != "" {
		if !domain.ValidTaxMode(s) {
			return opts, apperrors.ErrValidation
		}
		opts.TaxMode = domain.TaxMode(s)
	}
	return opts, nil
}

// monthRange parses the required from/to query parameters.
func monthRange(c *gin.Context) (domain.Month, domain.Month, error) {
	from, err := domain.ParseMonth(c.Query("from"))
	if err != nil {
		return domain.Month{}, domain.Month{}, err
	}
	to, err := domain.ParseMonth(c.Query("to"))
	if err != nil {
		return domain.Month{}, domain.Month{}, err
	}
	return from, to, nil
}

func (h *statementHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := monthRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month range: use from=YYYY-MM&to=YYYY-MM"})
		return
	}
	opts, err := statementOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info("Received request to generate profit and loss statement",
		slog.String("from", from.String()), slog.String("to", to.String()))

	stmt, err := h.statementService.ProfitAndLoss(c.Request.Context(), from, to, opts)
	if err != nil {
		logger.Error("Failed to generate profit and loss statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPLStatementResponse(stmt))
}

func (h *statementHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := monthRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month range: use from=YYYY-MM&to=YYYY-MM"})
		return
	}
	opts, err := statementOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info("Received request to generate cash flow statement",
		slog.String("from", from.String()), slog.String("to", to.String()))

	stmt, err := h.statementService.CashFlow(c.Request.Context(), from, to, opts)
	if err != nil {
		logger.Error("Failed to generate cash flow statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowStatementResponse(stmt))
}

func (h *statementHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, err := domain.ParseMonth(c.Query("asOf"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidMonthFormat) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid asOf month: use asOf=YYYY-MM"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	opts, err := statementOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info("Received request to generate balance sheet",
		slog.String("as_of", asOf.String()))

	sheet, err := h.statementService.BalanceSheet(c.Request.Context(), asOf, opts)
	if err != nil {
		logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}
