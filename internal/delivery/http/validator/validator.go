// Package validator bridges go-playground/validator into echo, so typed
// field rules on request DTOs run at the boundary.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type requestValidator struct {
	validate *validator.Validate
}

// New creates the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
