package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	clock       Clock
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Clock       Clock
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct persists a new product with a creation timestamp.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*usecase.ProductOutput, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	product := &entity.Product{
		Name:              input.Name,
		Brand:             input.Brand,
		Size:              input.Size,
		Price:             input.Price,
		URL:               input.URL,
		CreationTimestamp: formatTimestamp(srv.clock()),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, mapProductStoreError(err, "failed to create product")
	}

	return toProductOutput(product), nil
}

// ListProducts returns every product.
func (srv *productService) ListProducts(ctx context.Context) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, mapProductStoreError(err, "failed to list products")
	}

	outputs := make([]*usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, toProductOutput(product))
	}

	return outputs, nil
}

// GetProduct returns a single product.
func (srv *productService) GetProduct(ctx context.Context, id string) (*usecase.ProductOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductStoreError(err, "failed to get product")
	}

	return toProductOutput(product), nil
}

// UpdateProduct applies the full updatable field set with a fresh update
// timestamp. Existing orders keep their snapshot totals; only later order
// writes see the new price.
func (srv *productService) UpdateProduct(ctx context.Context, id string, input *usecase.ProductInput) error {
	product := &entity.Product{
		ID:               id,
		Name:             input.Name,
		Brand:            input.Brand,
		Size:             input.Size,
		Price:            input.Price,
		URL:              input.URL,
		UpdatedTimestamp: formatTimestamp(srv.clock()),
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return mapProductStoreError(err, "failed to update product")
	}

	return nil
}

// DeleteProduct removes a product unless at least one order references it.
// The reverse lookup and the delete are separate round trips with no
// isolation; an order created in between can still dangle.
func (srv *productService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := srv.productRepo.FindByID(ctx, id); err != nil {
		return mapProductStoreError(err, "failed to check product before delete")
	}

	count, err := srv.orderRepo.CountByProduct(ctx, id)
	if err != nil {
		return mapOrderStoreError(err, "failed to count referencing orders")
	}
	if count > 0 {
		srv.log(ctx).Info("Blocked product delete",
			slog.String("productID", id), slog.Int64("referencingOrders", count))

		return errors.WithStack(domainerrors.ErrProductInUse)
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return mapProductStoreError(err, "failed to delete product")
	}

	return nil
}

func toProductOutput(product *entity.Product) *usecase.ProductOutput {
	return &usecase.ProductOutput{
		ID:                product.ID,
		Name:              product.Name,
		Brand:             product.Brand,
		Size:              product.Size,
		Price:             product.Price,
		URL:               product.URL,
		CreationTimestamp: product.CreationTimestamp,
		UpdatedTimestamp:  product.UpdatedTimestamp,
	}
}
