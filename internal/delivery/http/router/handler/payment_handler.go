package handler

import (
	"log/slog"
	"net/http"

	"freeport/internal/delivery/http/response"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment handlers
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// ProcessPaymentRequest represents the request body for processing a payment
type ProcessPaymentRequest struct {
	Amount   float64           `json:"amount" validate:"required,gt=0"`
	Currency string            `json:"currency" validate:"required"`
	Method   string            `json:"method" validate:"required"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// RefundRequest represents the request body for refunding a payment
type RefundRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ProcessPayment handles running a payment through the simulated processor
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var req ProcessPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payment, err := h.paymentUC.ProcessPayment(c.Request().Context(), usecase.ProcessPaymentInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Method:   req.Method,
		Metadata: req.Metadata,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment processed")
}

// GetPayment handles retrieving one payment
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment, "")
}

// ListPayments handles listing the payment ledger
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.paymentUC.ListPayments(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// RefundPayment handles issuing a full refund
func (h *PaymentHandler) RefundPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	var req RefundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payment, err := h.paymentUC.RefundPayment(c.Request().Context(), id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment refunded")
}
