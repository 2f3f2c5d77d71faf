package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUser_InvalidID(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "not-a-token").
		Return(nil, repository.ErrInvalidID)

	output, err := fx.service.GetUser(ctx, "not-a-token")

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUserID)
}

func TestUserService_GetUser_StoreFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "665a1c2b9f1b2c3d4e5f6a7b").
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.GetUser(ctx, "665a1c2b9f1b2c3d4e5f6a7b")

	assert.Nil(t, output)
	require.Error(t, err)

	var storeErr *domainerrors.StoreExecuteError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "STORE_FAILED", storeErr.ErrorCode())
	assert.Empty(t, storeErr.Details())
}

func TestUserService_DeleteUser_ExistenceCheckFails(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "665a1c2b9f1b2c3d4e5f6a7b").
		Return(nil, errors.New("connection reset"))

	err := fx.service.DeleteUser(ctx, "665a1c2b9f1b2c3d4e5f6a7b")

	require.Error(t, err)

	var storeErr *domainerrors.StoreExecuteError
	assert.ErrorAs(t, err, &storeErr)
	fx.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "665a1c2b9f1b2c3d4e5f6a7b").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, "665a1c2b9f1b2c3d4e5f6a7b")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		Update(ctx, "665a1c2b9f1b2c3d4e5f6a7b", "Renamed", "10987654321", fixedClockStamp).
		Return(repository.ErrUserNotFound)

	err := fx.service.UpdateUser(ctx, "665a1c2b9f1b2c3d4e5f6a7b", &usecase.UpdateUserInput{
		Name: "Renamed",
		CPF:  "10987654321",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
