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

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProduct handles the product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := request.DecodeBody(c, usecase.RequiredProductFields, &input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Product created successfully")
}

// ListProducts handles the product listing request.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetProduct handles the single-product read request.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	output, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UpdateProduct handles the product update request. The full field set is
// resubmitted on every update.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := request.DecodeBody(c, usecase.RequiredProductFields, &input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// DeleteProduct handles the product deletion request. A product referenced
// by any order cannot be deleted.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
