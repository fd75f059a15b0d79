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

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler holds dependencies for marketplace listing handlers
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// CreateListingRequest represents the request body for creating a listing
type CreateListingRequest struct {
	SellerID    string  `json:"seller_id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// PurchaseRequest represents the request body for purchasing a listing
type PurchaseRequest struct {
	BuyerID string `json:"buyer_id" validate:"required"`
	Method  string `json:"method" validate:"required"`
}

// CreateListing handles creating a new marketplace listing
func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), usecase.CreateListingInput{
		SellerID:    req.SellerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    entity.ListingCategory(req.Category),
		Price:       req.Price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created successfully")
}

// GetListing handles retrieving one listing; the lookup counts as a view
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// ListListings handles listing all marketplace listings
func (h *ListingHandler) ListListings(c echo.Context) error {
	listings, err := h.listingUC.ListListings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Purchase handles purchasing a listing
func (h *ListingHandler) Purchase(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.listingUC.Purchase(c.Request().Context(), usecase.PurchaseInput{
		ListingID: id,
		BuyerID:   req.BuyerID,
		Method:    req.Method,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Purchase settled")
}

// Analytics handles the marketplace analytics rollup
func (h *ListingHandler) Analytics(c echo.Context) error {
	analytics, err := h.listingUC.Analytics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analytics, "")
}
