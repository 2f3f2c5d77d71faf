package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Every order write
// resolves both embedded references first and snapshots the total value from
// the product's price at that moment. The reference check and the write are
// separate round trips with no isolation between concurrent requests.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	pricer      service.OrderPricer
	clock       Clock
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Pricer      service.OrderPricer
	Clock       Clock
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		pricer:      params.Pricer,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkReferences resolves the order's productId and userId against the
// store and returns the product price the pricing step needs. The user
// lookup excludes the password.
func (srv *orderService) checkReferences(ctx context.Context, input *usecase.OrderInput) (float64, error) {
	price, err := srv.productRepo.FindPriceByID(ctx, input.ProductID)
	if err != nil {
		return 0, mapProductStoreError(err, "failed to resolve order product reference")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		return 0, mapUserStoreError(err, "failed to resolve order user reference")
	}

	return price, nil
}

// CreateOrder checks both references, prices the order from the product's
// current price, and persists it. No order record is written when either
// reference fails to resolve.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.OrderInput) (*usecase.OrderOutput, error) {
	price, err := srv.checkReferences(ctx, input)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ProductID:         input.ProductID,
		UserID:            input.UserID,
		Quantity:          input.Quantity,
		ZipCode:           input.ZipCode,
		StreetNumber:      input.StreetNumber,
		Complement:        input.Complement,
		TotalValue:        srv.pricer.Total(price, input.Quantity),
		CreationTimestamp: formatTimestamp(srv.clock()),
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to create order",
			slog.String("productID", input.ProductID), slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, mapOrderStoreError(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID), slog.Float64("totalValue", order.TotalValue))

	return toOrderOutput(order), nil
}

// ListOrders returns every order.
func (srv *orderService) ListOrders(ctx context.Context) ([]*usecase.OrderOutput, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, mapOrderStoreError(err, "failed to list orders")
	}

	outputs := make([]*usecase.OrderOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, toOrderOutput(order))
	}

	return outputs, nil
}

// GetOrder returns a single order.
func (srv *orderService) GetOrder(ctx context.Context, id string) (*usecase.OrderOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderStoreError(err, "failed to get order")
	}

	return toOrderOutput(order), nil
}

// UpdateOrder re-checks both references and reprices the order from the
// referenced product's price at edit time, so an update can shift the total
// even with an unchanged quantity.
func (srv *orderService) UpdateOrder(ctx context.Context, id string, input *usecase.OrderInput) error {
	price, err := srv.checkReferences(ctx, input)
	if err != nil {
		return err
	}

	order := &entity.Order{
		ID:               id,
		ProductID:        input.ProductID,
		UserID:           input.UserID,
		Quantity:         input.Quantity,
		ZipCode:          input.ZipCode,
		StreetNumber:     input.StreetNumber,
		Complement:       input.Complement,
		TotalValue:       srv.pricer.Total(price, input.Quantity),
		UpdatedTimestamp: formatTimestamp(srv.clock()),
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return mapOrderStoreError(err, "failed to update order")
	}

	return nil
}

// DeleteOrder removes an order after confirming it exists. An errored
// existence check fails the delete instead of being ignored.
func (srv *orderService) DeleteOrder(ctx context.Context, id string) error {
	if _, err := srv.orderRepo.FindByID(ctx, id); err != nil {
		return mapOrderStoreError(err, "failed to check order before delete")
	}

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		return mapOrderStoreError(err, "failed to delete order")
	}

	return nil
}

func toOrderOutput(order *entity.Order) *usecase.OrderOutput {
	return &usecase.OrderOutput{
		ID:                order.ID,
		ProductID:         order.ProductID,
		UserID:            order.UserID,
		Quantity:          order.Quantity,
		ZipCode:           order.ZipCode,
		StreetNumber:      order.StreetNumber,
		Complement:        order.Complement,
		TotalValue:        order.TotalValue,
		CreationTimestamp: order.CreationTimestamp,
		UpdatedTimestamp:  order.UpdatedTimestamp,
	}
}
