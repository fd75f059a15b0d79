// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"freeport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler      *handler.ListingHandler
	PaymentHandler      *handler.PaymentHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AcquisitionHandler  *handler.AcquisitionHandler
	RevenueHandler      *handler.RevenueHandler
	WorldHandler        *handler.WorldHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler      *handler.ListingHandler
	paymentHandler      *handler.PaymentHandler
	subscriptionHandler *handler.SubscriptionHandler
	acquisitionHandler  *handler.AcquisitionHandler
	revenueHandler      *handler.RevenueHandler
	worldHandler        *handler.WorldHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler:      params.ListingHandler,
		paymentHandler:      params.PaymentHandler,
		subscriptionHandler: params.SubscriptionHandler,
		acquisitionHandler:  params.AcquisitionHandler,
		revenueHandler:      params.RevenueHandler,
		worldHandler:        params.WorldHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Marketplace routes
	marketGroup := e.Group("/marketplace")
	{
		marketGroup.POST("/listings", r.listingHandler.CreateListing)
		marketGroup.GET("/listings", r.listingHandler.ListListings)
		marketGroup.GET("/listings/:id", r.listingHandler.GetListing)
		marketGroup.POST("/listings/:id/purchase", r.listingHandler.Purchase)
		marketGroup.GET("/analytics", r.listingHandler.Analytics)
	}

	// Payment routes
	paymentGroup := e.Group("/payments")
	{
		paymentGroup.POST("", r.paymentHandler.ProcessPayment)
		paymentGroup.GET("", r.paymentHandler.ListPayments)
		paymentGroup.GET("/:id", r.paymentHandler.GetPayment)
		paymentGroup.POST("/:id/refund", r.paymentHandler.RefundPayment)
	}

	// Subscription routes
	e.GET("/plans", r.subscriptionHandler.ListPlans)
	subGroup := e.Group("/subscriptions")
	{
		subGroup.POST("", r.subscriptionHandler.Subscribe)
		subGroup.POST("/:id/cancel", r.subscriptionHandler.Cancel)
		subGroup.GET("/analytics", r.subscriptionHandler.Analytics)
	}

	// Marketing campaign routes
	campaignGroup := e.Group("/campaigns")
	{
		campaignGroup.POST("", r.acquisitionHandler.CreateCampaign)
		campaignGroup.GET("", r.acquisitionHandler.ListCampaigns)
		campaignGroup.POST("/events", r.acquisitionHandler.TrackEvent)
		campaignGroup.GET("/analytics", r.acquisitionHandler.Analytics)
	}

	// Revenue routes
	revenueGroup := e.Group("/revenue")
	{
		revenueGroup.POST("/records", r.revenueHandler.Record)
		revenueGroup.GET("/forecast", r.revenueHandler.Forecast)
		revenueGroup.GET("/breakdown", r.revenueHandler.Breakdown)
		revenueGroup.POST("/close", r.revenueHandler.ClosePeriod)
	}

	// Universe simulation routes
	universeGroup := e.Group("/universe")
	{
		universeGroup.POST("/manifests", r.worldHandler.GenerateManifest)
		universeGroup.GET("/jobs", r.worldHandler.ListJobs)
		universeGroup.POST("/jobs/:id/accept", r.worldHandler.AcceptJob)
		universeGroup.POST("/jobs/:id/complete", r.worldHandler.CompleteJob)
		universeGroup.GET("/market", r.worldHandler.ListMarket)
		universeGroup.POST("/market", r.worldHandler.CreateMarketListing)
		universeGroup.POST("/market/:id/purchase", r.worldHandler.PurchaseMarketListing)
		universeGroup.GET("/routes", r.worldHandler.ListRoutes)
		universeGroup.GET("/runs/active", r.worldHandler.ActiveRuns)
		universeGroup.GET("/runs/recent", r.worldHandler.RecentRuns)
	}
}
