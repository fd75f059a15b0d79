package handler

import (
	"log/slog"
	"net/http"

	"freeport/internal/delivery/http/response"
	"freeport/internal/domain/entity"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AcquisitionHandlerParams holds dependencies for AcquisitionHandler, injected by Fx.
type AcquisitionHandlerParams struct {
	fx.In

	AcquisitionUC usecase.AcquisitionUsecase
	Logger        *slog.Logger
}

// AcquisitionHandler holds dependencies for marketing funnel handlers
type AcquisitionHandler struct {
	acquisitionUC usecase.AcquisitionUsecase
	logger        *slog.Logger
}

// NewAcquisitionHandler is the constructor for AcquisitionHandler
func NewAcquisitionHandler(params AcquisitionHandlerParams) *AcquisitionHandler {
	return &AcquisitionHandler{
		acquisitionUC: params.AcquisitionUC,
		logger:        params.Logger,
	}
}

// CreateCampaignRequest represents the request body for creating a campaign
type CreateCampaignRequest struct {
	Name    string  `json:"name" validate:"required"`
	Channel string  `json:"channel" validate:"required"`
	Budget  float64 `json:"budget" validate:"gte=0"`
}

// TrackEventRequest represents the request body for tracking a funnel event
type TrackEventRequest struct {
	EventType string  `json:"event_type" validate:"required"`
	Cost      float64 `json:"cost" validate:"gte=0"`
}

// CreateCampaign handles creating a marketing campaign
func (h *AcquisitionHandler) CreateCampaign(c echo.Context) error {
	var req CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	campaign, err := h.acquisitionUC.CreateCampaign(c.Request().Context(), usecase.CreateCampaignInput{
		Name:    req.Name,
		Channel: req.Channel,
		Budget:  req.Budget,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, campaign, "Campaign created successfully")
}

// TrackEvent handles recording a funnel event against a campaign
func (h *AcquisitionHandler) TrackEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	var req TrackEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err = h.acquisitionUC.TrackEvent(c.Request().Context(), usecase.TrackEventInput{
		CampaignID: id,
		EventType:  entity.FunnelEventType(req.EventType),
		Cost:       req.Cost,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Event tracked")
}

// ListCampaigns handles listing all campaigns
func (h *AcquisitionHandler) ListCampaigns(c echo.Context) error {
	campaigns, err := h.acquisitionUC.ListCampaigns(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaigns, "")
}

// Analytics handles the acquisition analytics rollup
func (h *AcquisitionHandler) Analytics(c echo.Context) error {
	analytics, err := h.acquisitionUC.Analytics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analytics, "")
}
