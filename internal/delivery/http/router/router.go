// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mazza/internal/delivery/http/middleware"
	"mazza/internal/delivery/http/router/handler"
	"mazza/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DiscoveryHandler *handler.DiscoveryHandler
	OrderHandler     *handler.OrderHandler
	StoreHandler     *handler.StoreHandler
	AuthMiddleware   *middleware.AuthMiddleware
	RateLimit        *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	discoveryHandler *handler.DiscoveryHandler
	orderHandler     *handler.OrderHandler
	storeHandler     *handler.StoreHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimit        *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		discoveryHandler: params.DiscoveryHandler,
		orderHandler:     params.OrderHandler,
		storeHandler:     params.StoreHandler,
		authMiddleware:   params.AuthMiddleware,
		rateLimit:        params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Discovery is public but rate limited per client IP
	e.GET("/stores/nearby", r.discoveryHandler.FindNearby, r.rateLimit.Limit)

	// Order routes require authentication; ownership checks happen in the usecase
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder, r.authMiddleware.RequireRole(service.RoleBuyer))
		orderGroup.GET("", r.orderHandler.ListMyOrders, r.authMiddleware.RequireRole(service.RoleBuyer))
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/qr", r.orderHandler.PickupQR)
		orderGroup.POST("/:id/confirm", r.orderHandler.ConfirmOrder, r.authMiddleware.RequireRole(service.RoleSeller))
		orderGroup.POST("/:id/reject", r.orderHandler.RejectOrder)
	}

	// Store routes require authentication and the "seller" role
	storeGroup := e.Group("/store")
	storeGroup.Use(r.authMiddleware.Authenticate)
	storeGroup.Use(r.authMiddleware.RequireRole(service.RoleSeller))
	{
		storeGroup.POST("", r.storeHandler.CreateStore)
		storeGroup.GET("", r.storeHandler.GetOwnStore)
		storeGroup.PUT("/hours", r.storeHandler.UpdateStoreHours)
		storeGroup.PUT("/location", r.storeHandler.UpdateStoreLocation)
		storeGroup.GET("/orders/pending", r.orderHandler.ListPendingOrders)

		storeGroup.POST("/products", r.storeHandler.CreateProduct)
		storeGroup.GET("/products", r.storeHandler.ListOwnProducts)
		storeGroup.PATCH("/products/:id", r.storeHandler.UpdateProduct)
		storeGroup.DELETE("/products/:id", r.storeHandler.DeactivateProduct)
	}
}
