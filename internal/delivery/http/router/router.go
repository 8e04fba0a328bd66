// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"moa/internal/delivery/http/middleware"
	"moa/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GroupHandler   *handler.GroupHandler
	QueryHandler   *handler.QueryHandler
	PaymentHandler *handler.PaymentHandler
	AlertHandler   *handler.AlertHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	groupHandler   *handler.GroupHandler
	queryHandler   *handler.QueryHandler
	paymentHandler *handler.PaymentHandler
	alertHandler   *handler.AlertHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		groupHandler:   params.GroupHandler,
		queryHandler:   params.QueryHandler,
		paymentHandler: params.PaymentHandler,
		alertHandler:   params.AlertHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public group listings
	listGroup := e.Group("/groups")
	{
		listGroup.GET("/closing", r.queryHandler.ClosingSoon)
		listGroup.GET("/remaining", r.queryHandler.ByRemaining)
		listGroup.GET("/:groupId/state", r.groupHandler.GetGroupState)
		listGroup.GET("/:groupId/invite-qr", r.groupHandler.GenerateInviteQR)
	}

	// Group lifecycle routes that require authentication
	groupGroup := e.Group("/groups")
	groupGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		groupGroup.POST("", r.groupHandler.CreateGroup)
		groupGroup.GET("/nearby", r.queryHandler.Nearby)
		groupGroup.POST("/:groupId/join", r.groupHandler.JoinGroup)
		groupGroup.PUT("/:groupId/quantity", r.groupHandler.SetQuantity)
		groupGroup.DELETE("/:groupId/leave", r.groupHandler.LeaveGroup)
		groupGroup.POST("/:groupId/review", r.groupHandler.MarkReviewed)
		groupGroup.GET("/:groupId/payments", r.paymentHandler.ListGroupPayments)
	}

	// Admin routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)         // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole("admin")) // Then, check for the role
	{
		adminGroup.PATCH("/groups/:groupId", r.groupHandler.UpdateGroup)
		adminGroup.PUT("/payments/:paymentId", r.paymentHandler.SetPayment)
	}

	// Payment ledger routes that require authentication
	paymentGroup := e.Group("/payments")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.GET("/:paymentId", r.paymentHandler.GetPayment)
		paymentGroup.POST("/:paymentId/redeem", r.paymentHandler.RedeemVoucher)
	}

	// Notification inbox routes that require authentication
	alertGroup := e.Group("/alerts")
	alertGroup.Use(r.authMiddleware.Authenticate)
	{
		alertGroup.GET("", r.alertHandler.ListAlerts)
		alertGroup.PUT("/:alertId/read", r.alertHandler.MarkRead)
	}
}
