// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.POST("/auth", r.userHandler.Authenticate)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
		userGroup.GET("/:id/orders", r.userHandler.ListUserOrders)
	}

	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.PATCH("/:id", r.productHandler.UpdateProduct)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PATCH("/:id", r.orderHandler.UpdateOrder)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
	}
}
