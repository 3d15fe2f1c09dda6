// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/calvin-79/food-delivery-tracking/config"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/middleware"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ClientHandler  *handler.ClientHandler
	ItemHandler    *handler.ItemHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	clientHandler  *handler.ClientHandler
	itemHandler    *handler.ItemHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		clientHandler:  params.ClientHandler,
		itemHandler:    params.ItemHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every mutation requires a Bearer access token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	apiV1 := e.Group("/api/v1")
	authenticated := r.authMiddleware.Authenticate

	itemsGroup := apiV1.Group("/items")
	{
		itemsGroup.GET("", r.itemHandler.ListItems)
		itemsGroup.GET("/search", r.itemHandler.SearchItems)
		itemsGroup.GET("/:id", r.itemHandler.GetItem)
		itemsGroup.GET("/:id/reviews", r.itemHandler.ListItemReviews)
		itemsGroup.POST("", r.itemHandler.CreateItem, authenticated)
		itemsGroup.DELETE("/:id", r.itemHandler.DeleteItem, authenticated)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.GetOrderQR)
		ordersGroup.POST("", r.orderHandler.CreateOrder, authenticated)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus, authenticated)
		ordersGroup.POST("/:id/delivery", r.orderHandler.ConfirmDelivery, authenticated)
	}

	clientsGroup := apiV1.Group("/clients")
	{
		clientsGroup.GET("", r.clientHandler.ListClients)
		clientsGroup.GET("/:id", r.clientHandler.GetClient)
		clientsGroup.GET("/:id/orders", r.clientHandler.ListClientOrders)
		clientsGroup.POST("", r.clientHandler.CreateClient, authenticated)
	}

	reviewsGroup := apiV1.Group("/reviews")
	{
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
		reviewsGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewsGroup.POST("", r.reviewHandler.CreateReview, authenticated)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview, authenticated)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
