// Package request decodes JSON request bodies against the per-operation
// required-attribute lists.
package request

import (
	"encoding/json"
	"io"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DecodeBody checks that every required attribute key is present in the JSON
// body, then unmarshals it into dst and runs the boundary validator.
//
// Presence is checked on keys only: a null or empty value still counts as
// present. An empty (or absent) body and a missing key are distinct
// conditions, and the first missing key in declared order is the one named.
func DecodeBody(c echo.Context, required []string, dst any) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "failed to read request body")
	}

	if len(raw) == 0 {
		return errors.WithStack(domainerrors.ErrEmptyBody)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("body is not a JSON object"))
	}
	if len(body) == 0 {
		return errors.WithStack(domainerrors.ErrEmptyBody)
	}

	for _, field := range required {
		if _, ok := body[field]; !ok {
			return errors.WithStack(domainerrors.NewMissingFieldError(field))
		}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("body has mistyped attributes"))
	}

	if err := c.Validate(dst); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return nil
}
