package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/request"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOrder handles the order creation request.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input usecase.OrderInput
	if err := request.DecodeBody(c, usecase.RequiredOrderFields, &input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateOrder(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order created successfully")
}

// ListOrders handles the order listing request.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	output, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetOrder handles the single-order read request.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	output, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UpdateOrder handles the order update request. Both references are
// re-checked and the total re-priced from the product at edit time.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var input usecase.OrderInput
	if err := request.DecodeBody(c, usecase.RequiredOrderFields, &input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateOrder(c.Request().Context(), c.Param("id"), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// DeleteOrder handles the order deletion request.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.uc.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
