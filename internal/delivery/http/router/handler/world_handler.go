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

// WorldHandlerParams holds dependencies for WorldHandler, injected by Fx.
type WorldHandlerParams struct {
	fx.In

	CargoUC       usecase.CargoUsecase
	JobUC         usecase.JobUsecase
	BlackMarketUC usecase.BlackMarketUsecase
	TradeRouteUC  usecase.TradeRouteUsecase
	SmugglingUC   usecase.SmugglingUsecase
	Logger        *slog.Logger
}

// WorldHandler holds dependencies for the universe simulation handlers
type WorldHandler struct {
	cargoUC       usecase.CargoUsecase
	jobUC         usecase.JobUsecase
	blackMarketUC usecase.BlackMarketUsecase
	tradeRouteUC  usecase.TradeRouteUsecase
	smugglingUC   usecase.SmugglingUsecase
	logger        *slog.Logger
}

// NewWorldHandler is the constructor for WorldHandler
func NewWorldHandler(params WorldHandlerParams) *WorldHandler {
	return &WorldHandler{
		cargoUC:       params.CargoUC,
		jobUC:         params.JobUC,
		blackMarketUC: params.BlackMarketUC,
		tradeRouteUC:  params.TradeRouteUC,
		smugglingUC:   params.SmugglingUC,
		logger:        params.Logger,
	}
}

// GenerateManifestRequest represents the request body for a manifest draw
type GenerateManifestRequest struct {
	Capacity  float64 `json:"capacity" validate:"required"`
	Tolerance string  `json:"tolerance" validate:"required,oneof=low medium high"`
}

// AcceptJobRequest represents the request body for accepting a job
type AcceptJobRequest struct {
	ContractorID string `json:"contractor_id" validate:"required"`
}

// CompleteJobRequest represents the request body for completing a job
type CompleteJobRequest struct {
	Success bool `json:"success"`
}

// MarketPurchaseRequest represents the request body for a black market purchase
type MarketPurchaseRequest struct {
	BuyerID string `json:"buyer_id" validate:"required"`
}

// GenerateManifest handles drawing a cargo manifest
func (h *WorldHandler) GenerateManifest(c echo.Context) error {
	var req GenerateManifestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid manifest input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	manifest, err := h.cargoUC.GenerateManifest(c.Request().Context(), usecase.GenerateManifestInput{
		Capacity:  req.Capacity,
		Tolerance: entity.RiskTolerance(req.Tolerance),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, manifest, "Manifest generated")
}

// ListJobs handles listing the job board
func (h *WorldHandler) ListJobs(c echo.Context) error {
	jobs, err := h.jobUC.ListJobs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, jobs, "")
}

// AcceptJob handles a contractor taking an available job
func (h *WorldHandler) AcceptJob(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	var req AcceptJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accept input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	job, err := h.jobUC.AcceptJob(c.Request().Context(), id, req.ContractorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, job, "Job accepted")
}

// CompleteJob handles resolving an active job
func (h *WorldHandler) CompleteJob(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	var req CompleteJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completion input")
	}

	job, err := h.jobUC.CompleteJob(c.Request().Context(), id, req.Success)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, job, "Job resolved")
}

// ListMarket handles listing the black market
func (h *WorldHandler) ListMarket(c echo.Context) error {
	listings, err := h.blackMarketUC.ListListings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// CreateMarketListing handles generating a black market listing on demand
func (h *WorldHandler) CreateMarketListing(c echo.Context) error {
	listing, err := h.blackMarketUC.GenerateListing(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created")
}

// PurchaseMarketListing handles a black market purchase attempt
func (h *WorldHandler) PurchaseMarketListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req MarketPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.blackMarketUC.Purchase(c.Request().Context(), id, req.BuyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Purchase completed"
	if result.Intercepted {
		message = "Purchase intercepted"
	}

	return response.Success(c, http.StatusOK, result, message)
}

// ListRoutes handles listing the trade route network
func (h *WorldHandler) ListRoutes(c echo.Context) error {
	routes, err := h.tradeRouteUC.ListRoutes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, routes, "")
}

// ActiveRuns handles listing in-flight smuggling runs
func (h *WorldHandler) ActiveRuns(c echo.Context) error {
	runs, err := h.smugglingUC.ActiveRuns(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, runs, "")
}

// RecentRuns handles listing the capped resolution history
func (h *WorldHandler) RecentRuns(c echo.Context) error {
	runs, err := h.smugglingUC.RecentRuns(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, runs, "")
}
