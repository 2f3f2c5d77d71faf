package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestServer(t *testing.T, userRepo *mockRepo.MockUserRepository, orderRepo *mockRepo.MockOrderRepository) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := impl.NewUserService(impl.UserServiceParams{
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
		Clock:     func() time.Time { return time.Date(2024, 5, 17, 21, 42, 7, 0, time.UTC) },
		Logger:    logger,
	})
	h := NewUserHandler(service, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/users", h.CreateUser)
	e.GET("/users/:id", h.GetUser)
	e.GET("/health", HealthCheck)

	return e
}

func TestUserHandler_CreateUser_Integration(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	e := newTestServer(t, userRepo, orderRepo)

	userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = "665a1c2b9f1b2c3d4e5f6a7b"
		}).
		Return(nil)

	body := `{"name":"Test User","email":"test@example.com","cpf":"12345678901","password":"Password123!"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"665a1c2b9f1b2c3d4e5f6a7b"`)
	assert.Contains(t, rec.Body.String(), `"creationTimestamp":"17/05/2024, 21:42:07"`)
	assert.NotContains(t, rec.Body.String(), "Password123!")
}

func TestUserHandler_CreateUser_MissingField_Integration(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	e := newTestServer(t, userRepo, orderRepo)

	// cpf is the first required attribute absent from the body
	body := `{"name":"Test User","email":"test@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"MISSING_FIELD"`)
	assert.Contains(t, rec.Body.String(), "Missing body attribute cpf")
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserHandler_GetUser_InvalidID_Integration(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	e := newTestServer(t, userRepo, orderRepo)

	userRepo.EXPECT().
		FindByID(mock.Anything, "not-a-token").
		Return(nil, repository.ErrInvalidID)

	req := httptest.NewRequest(http.MethodGet, "/users/not-a-token", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INVALID_USER_ID"`)
}

func TestHealthCheck(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	e := newTestServer(t, userRepo, orderRepo)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
