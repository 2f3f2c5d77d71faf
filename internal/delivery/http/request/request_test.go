package request

import (
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestDecodeBody_EmptyBody(t *testing.T) {
	c := newTestContext(t, "")

	var dst usecase.ProductInput
	err := DecodeBody(c, usecase.RequiredProductFields, &dst)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyBody)
}

func TestDecodeBody_EmptyObject(t *testing.T) {
	c := newTestContext(t, "{}")

	var dst usecase.ProductInput
	err := DecodeBody(c, usecase.RequiredProductFields, &dst)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyBody)
}

func TestDecodeBody_NotAnObject(t *testing.T) {
	c := newTestContext(t, `[1,2,3]`)

	var dst usecase.ProductInput
	err := DecodeBody(c, usecase.RequiredProductFields, &dst)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDecodeBody_FirstMissingFieldNamed(t *testing.T) {
	// brand and url are both absent; brand comes first in declared order
	c := newTestContext(t, `{"name":"Keyboard","size":"75%","price":349.9}`)

	var dst usecase.ProductInput
	err := DecodeBody(c, usecase.RequiredProductFields, &dst)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MISSING_FIELD", appErr.ErrorCode())
	assert.Equal(t, "brand", appErr.Details())
}

func TestDecodeBody_NullValueCountsAsPresent(t *testing.T) {
	c := newTestContext(t, `{"name":"Keyboard","brand":null,"size":"75%","price":349.9,"url":"https://example.com"}`)

	var dst usecase.ProductInput
	err := DecodeBody(c, usecase.RequiredProductFields, &dst)

	require.NoError(t, err)
	assert.Empty(t, dst.Brand)
}

func TestDecodeBody_MistypedAttribute(t *testing.T) {
	c := newTestContext(t, `{"productId":"1a2b3c4d5e6f7a8b9c0d1e2f","userId":"665a1c2b9f1b2c3d4e5f6a7b","quantity":"three","zipCode":"01310-100","streetNumber":900}`)

	var dst usecase.OrderInput
	err := DecodeBody(c, usecase.RequiredOrderFields, &dst)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDecodeBody_BoundaryRuleRejectsZeroQuantity(t *testing.T) {
	c := newTestContext(t, `{"productId":"1a2b3c4d5e6f7a8b9c0d1e2f","userId":"665a1c2b9f1b2c3d4e5f6a7b","quantity":0,"zipCode":"01310-100","streetNumber":900}`)

	var dst usecase.OrderInput
	err := DecodeBody(c, usecase.RequiredOrderFields, &dst)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDecodeBody_Success(t *testing.T) {
	c := newTestContext(t, `{"productId":"1a2b3c4d5e6f7a8b9c0d1e2f","userId":"665a1c2b9f1b2c3d4e5f6a7b","quantity":3,"zipCode":"01310-100","streetNumber":900,"complement":"apt 42"}`)

	var dst usecase.OrderInput
	err := DecodeBody(c, usecase.RequiredOrderFields, &dst)

	require.NoError(t, err)
	assert.Equal(t, 3, dst.Quantity)
	assert.Equal(t, "apt 42", dst.Complement)
}
