package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	pricer      *mockSvc.MockOrderPricer
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pricer := mockSvc.NewMockOrderPricer(t)

	service := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Pricer:      pricer,
		Clock:       fixedClock,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		pricer:      pricer,
	}
}

func newTestOrderInput() *usecase.OrderInput {
	return &usecase.OrderInput{
		ProductID:    "1a2b3c4d5e6f7a8b9c0d1e2f",
		UserID:       "665a1c2b9f1b2c3d4e5f6a7b",
		Quantity:     3,
		ZipCode:      "01310-100",
		StreetNumber: 900,
		Complement:   "apt 42",
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := newTestOrderInput()

	fx.productRepo.EXPECT().
		FindPriceByID(ctx, input.ProductID).
		Return(24.9, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, input.UserID).
		Return(&entity.User{ID: input.UserID}, nil)
	fx.pricer.EXPECT().
		Total(24.9, 3).
		Return(74.7)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = "7b6a5f4e3d2c1b9f2b1c5a66"
		}).
		Return(nil)

	output, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "7b6a5f4e3d2c1b9f2b1c5a66", output.ID)
	assert.Equal(t, 74.7, output.TotalValue)
	assert.Equal(t, fixedClockStamp, output.CreationTimestamp)
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := newTestOrderInput()

	fx.productRepo.EXPECT().
		FindPriceByID(ctx, input.ProductID).
		Return(float64(0), repository.ErrProductNotFound)

	output, err := fx.service.CreateOrder(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_UserNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := newTestOrderInput()

	fx.productRepo.EXPECT().
		FindPriceByID(ctx, input.ProductID).
		Return(24.9, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, input.UserID).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.CreateOrder(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_InvalidProductReference(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := newTestOrderInput()
	input.ProductID = "not-a-token"

	fx.productRepo.EXPECT().
		FindPriceByID(ctx, input.ProductID).
		Return(float64(0), repository.ErrInvalidID)

	output, err := fx.service.CreateOrder(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidProductID)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrder_Reprices(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := newTestOrderInput()
	orderID := "7b6a5f4e3d2c1b9f2b1c5a66"

	// price changed since the order was created
	fx.productRepo.EXPECT().
		FindPriceByID(ctx, input.ProductID).
		Return(30.0, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, input.UserID).
		Return(&entity.User{ID: input.UserID}, nil)
	fx.pricer.EXPECT().
		Total(30.0, 3).
		Return(90.0)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			assert.Equal(t, orderID, order.ID)
			assert.Equal(t, 90.0, order.TotalValue)
			assert.Equal(t, fixedClockStamp, order.UpdatedTimestamp)
		}).
		Return(nil)

	err := fx.service.UpdateOrder(ctx, orderID, input)

	require.NoError(t, err)
}

func TestOrderService_UpdateOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := newTestOrderInput()

	fx.productRepo.EXPECT().
		FindPriceByID(ctx, input.ProductID).
		Return(24.9, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, input.UserID).
		Return(&entity.User{ID: input.UserID}, nil)
	fx.pricer.EXPECT().
		Total(24.9, 3).
		Return(74.7)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrOrderNotFound)

	err := fx.service.UpdateOrder(ctx, "7b6a5f4e3d2c1b9f2b1c5a66", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_InvalidID(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, "not-a-token").
		Return(nil, repository.ErrInvalidID)

	output, err := fx.service.GetOrder(ctx, "not-a-token")

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderID)
}

func TestOrderService_DeleteOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := "7b6a5f4e3d2c1b9f2b1c5a66"

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID}, nil)
	fx.orderRepo.EXPECT().
		Delete(ctx, orderID).
		Return(nil)

	err := fx.service.DeleteOrder(ctx, orderID)

	require.NoError(t, err)
}

func TestOrderService_DeleteOrder_ExistenceCheckFails(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, "7b6a5f4e3d2c1b9f2b1c5a66").
		Return(nil, errors.New("connection reset"))

	err := fx.service.DeleteOrder(ctx, "7b6a5f4e3d2c1b9f2b1c5a66")

	require.Error(t, err)

	var storeErr *domainerrors.StoreExecuteError
	assert.ErrorAs(t, err, &storeErr)
	fx.orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
