// Package handler contains the HTTP handlers for the application.
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

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateUser handles the user creation request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := request.DecodeBody(c, usecase.RequiredUserFields, &input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User created successfully")
}

// ListUsers handles the user listing request. Password and id are excluded
// from every entry.
func (h *UserHandler) ListUsers(c echo.Context) error {
	output, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetUser handles the single-user read request.
func (h *UserHandler) GetUser(c echo.Context) error {
	output, err := h.uc.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UpdateUser handles the partial user update request.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var input usecase.UpdateUserInput
	if err := request.DecodeBody(c, usecase.RequiredUserUpdateFields, &input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateUser(c.Request().Context(), c.Param("id"), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// DeleteUser handles the user deletion request.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Authenticate handles the credential-comparison request.
func (h *UserHandler) Authenticate(c echo.Context) error {
	var input usecase.AuthInput
	if err := request.DecodeBody(c, []string{"email", "password"}, &input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Authentication successful")
}

// ListUserOrders handles the enriched per-user order listing request.
func (h *UserHandler) ListUserOrders(c echo.Context) error {
	output, err := h.uc.ListUserOrders(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
