package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	userRepo  *mockRepo.MockUserRepository
	orderRepo *mockRepo.MockOrderRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewUserService(UserServiceParams{
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
		Clock:     fixedClock,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		CPF:      "12345678901",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = "665a1c2b9f1b2c3d4e5f6a7b"
		}).
		Return(nil)

	output, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "665a1c2b9f1b2c3d4e5f6a7b", output.ID)
	assert.Equal(t, input.Email, output.Email)
	assert.Equal(t, fixedClockStamp, output.CreationTimestamp)
	assert.Empty(t, output.UpdatedTimestamp)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		CPF:      "12345678901",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	output, err := fx.service.CreateUser(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.AuthInput{Email: "test@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().
		FindCredentialsByEmail(ctx, input.Email).
		Return(&entity.Credentials{Email: input.Email, Password: input.Password}, nil)

	output, err := fx.service.Authenticate(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Email)
}

func TestUserService_Authenticate_PasswordMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.AuthInput{Email: "test@example.com", Password: "wrong"}

	fx.userRepo.EXPECT().
		FindCredentialsByEmail(ctx, input.Email).
		Return(&entity.Credentials{Email: input.Email, Password: "Password123!"}, nil)

	output, err := fx.service.Authenticate(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthMismatch)
}

func TestUserService_Authenticate_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.AuthInput{Email: "nobody@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().
		FindCredentialsByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Authenticate(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUserOrders_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := "665a1c2b9f1b2c3d4e5f6a7b"

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Test User"}, nil)

	fx.orderRepo.EXPECT().
		FindEnrichedByUser(ctx, userID).
		Return([]*entity.EnrichedOrder{
			{
				Order: entity.Order{
					ID:        "7b6a5f4e3d2c1b9f2b1c5a66",
					ProductID: "1a2b3c4d5e6f7a8b9c0d1e2f",
					UserID:    userID,
					Quantity:  2,
				},
				ProductName: "Mechanical Keyboard",
			},
			{
				// product deleted after the order was placed
				Order: entity.Order{
					ID:        "8c7b6a5f4e3d2c1b9f2b1c55",
					ProductID: "2b3c4d5e6f7a8b9c0d1e2f3a",
					UserID:    userID,
					Quantity:  1,
				},
				ProductName: "",
			},
		}, nil)

	outputs, err := fx.service.ListUserOrders(ctx, userID)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "Mechanical Keyboard", outputs[0].ProductName)
	assert.Empty(t, outputs[1].ProductName)
	assert.Equal(t, userID, outputs[1].UserID)
}

func TestUserService_ListUserOrders_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "665a1c2b9f1b2c3d4e5f6a7b").
		Return(nil, repository.ErrUserNotFound)

	outputs, err := fx.service.ListUserOrders(ctx, "665a1c2b9f1b2c3d4e5f6a7b")

	assert.Nil(t, outputs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.orderRepo.AssertNotCalled(t, "FindEnrichedByUser", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.UpdateUserInput{Name: "Renamed User", CPF: "10987654321"}

	fx.userRepo.EXPECT().
		Update(ctx, "665a1c2b9f1b2c3d4e5f6a7b", input.Name, input.CPF, fixedClockStamp).
		Return(nil)

	err := fx.service.UpdateUser(ctx, "665a1c2b9f1b2c3d4e5f6a7b", input)

	require.NoError(t, err)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := "665a1c2b9f1b2c3d4e5f6a7b"

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	fx.userRepo.EXPECT().
		Delete(ctx, userID).
		Return(nil)

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}
