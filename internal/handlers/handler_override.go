package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// overrideHandler handles HTTP requests for statement cell overrides and
// the equity configuration.
type overrideHandler struct {
	overrideService portssvc.OverrideSvcFacade
	equityService   portssvc.EquitySvcFacade
}

func newOverrideHandler(os portssvc.OverrideSvcFacade, es portssvc.EquitySvcFacade) *overrideHandler {
	return &overrideHandler{overrideService: os, equityService: es}
}

// registerOverrideRoutes registers routes for overrides and equity config.
func registerOverrideRoutes(rg *gin.RouterGroup, overrideService portssvc.OverrideSvcFacade, equityService portssvc.EquitySvcFacade) {
	h := newOverrideHandler(overrideService, equityService)

	overrides := rg.Group("/overrides")
	{
		overrides.PUT("", h.putOverride)
		overrides.GET("", h.listOverrides)
		overrides.DELETE("/:categoryID/:month", h.deleteOverride)
	}

	equity := rg.Group("/equity")
	{
		equity.GET("", h.getEquityConfig)
		equity.PUT("", h.updateEquityConfig)
	}
}

func (h *overrideHandler) putOverride(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PutOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PutOverride", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	override, err := h.overrideService.PutOverride(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Category not found"})
		case errors.Is(err, apperrors.ErrInvalidMonthFormat), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to put override", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set override"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOverrideResponse(override))
}

func (h *overrideHandler) listOverrides(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overrides, err := h.overrideService.ListOverrides(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list overrides", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list overrides"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOverrideResponses(overrides))
}

func (h *overrideHandler) deleteOverride(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")
	month := c.Param("month")

	if err := h.overrideService.DeleteOverride(c.Request.Context(), categoryID, month); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Override not found"})
		case errors.Is(err, apperrors.ErrInvalidMonthFormat):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to delete override", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete override"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *overrideHandler) getEquityConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cfg, err := h.equityService.GetEquityConfig(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get equity config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve equity config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEquityConfigResponse(cfg))
}

func (h *overrideHandler) updateEquityConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateEquityConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEquityConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := h.equityService.UpdateEquityConfig(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update equity config", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update equity config"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEquityConfigResponse(cfg))
}
