package handler

import (
	"log/slog"
	"net/http"

	"freeport/internal/delivery/http/response"
	"freeport/internal/domain/entity"
	"freeport/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RevenueHandlerParams holds dependencies for RevenueHandler, injected by Fx.
type RevenueHandlerParams struct {
	fx.In

	RevenueUC usecase.RevenueUsecase
	Logger    *slog.Logger
}

// RevenueHandler holds dependencies for revenue handlers
type RevenueHandler struct {
	revenueUC usecase.RevenueUsecase
	logger    *slog.Logger
}

// NewRevenueHandler is the constructor for RevenueHandler
func NewRevenueHandler(params RevenueHandlerParams) *RevenueHandler {
	return &RevenueHandler{
		revenueUC: params.RevenueUC,
		logger:    params.Logger,
	}
}

// RecordRevenueRequest represents the request body for recording revenue.
// Ad revenue has no internal producer, so it arrives through this endpoint.
type RecordRevenueRequest struct {
	Stream string  `json:"stream" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// Record handles recording revenue against a stream
func (h *RevenueHandler) Record(c echo.Context) error {
	var req RecordRevenueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revenue input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.revenueUC.Record(c.Request().Context(), entity.RevenueStream(req.Stream), req.Amount); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Revenue recorded")
}

// Forecast handles the least-squares revenue projection
func (h *RevenueHandler) Forecast(c echo.Context) error {
	forecast, err := h.revenueUC.Forecast(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, forecast, "")
}

// Breakdown handles the per-stream revenue report
func (h *RevenueHandler) Breakdown(c echo.Context) error {
	breakdown, err := h.revenueUC.Breakdown(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, breakdown, "")
}

// ClosePeriod handles rolling the open period into the history series
func (h *RevenueHandler) ClosePeriod(c echo.Context) error {
	closed, err := h.revenueUC.ClosePeriod(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]float64{"closed": closed}, "Period closed")
}
