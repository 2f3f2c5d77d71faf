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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	clock     Clock
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Clock     Clock
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser persists a new user with a creation timestamp. A duplicate
// email surfaces as the store's unique-constraint error.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Creating user", slog.String("email", input.Email))

	user := &entity.User{
		Name:              input.Name,
		Email:             input.Email,
		CPF:               input.CPF,
		Password:          input.Password,
		CreationTimestamp: formatTimestamp(srv.clock()),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, mapUserStoreError(err, "failed to create user")
	}

	return toUserOutput(user), nil
}

// ListUsers returns every user; the store projection already excludes the
// password and id fields.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, mapUserStoreError(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, toUserOutput(user))
	}

	return outputs, nil
}

// GetUser returns a single user without the password.
func (srv *userService) GetUser(ctx context.Context, id string) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserStoreError(err, "failed to get user")
	}

	return toUserOutput(user), nil
}

// UpdateUser applies the partial field set with a fresh update timestamp.
func (srv *userService) UpdateUser(ctx context.Context, id string, input *usecase.UpdateUserInput) error {
	err := srv.userRepo.Update(ctx, id, input.Name, input.CPF, formatTimestamp(srv.clock()))
	if err != nil {
		return mapUserStoreError(err, "failed to update user")
	}

	return nil
}

// DeleteUser removes a user. The existence check must succeed before the
// delete runs; an errored check fails the whole operation.
func (srv *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		return mapUserStoreError(err, "failed to check user before delete")
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return mapUserStoreError(err, "failed to delete user")
	}

	return nil
}

// Authenticate compares the submitted credentials against the stored pair by
// equality. An unknown email is not-found; a known email with a different
// password is a mismatch. Neither response carries the password.
func (srv *userService) Authenticate(ctx context.Context, input *usecase.AuthInput) (*usecase.AuthOutput, error) {
	creds, err := srv.userRepo.FindCredentialsByEmail(ctx, input.Email)
	if err != nil {
		return nil, mapUserStoreError(err, "failed to look up credentials")
	}

	if creds.Email != input.Email || creds.Password != input.Password {
		srv.log(ctx).Warn("Authentication mismatch", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrAuthMismatch)
	}

	return &usecase.AuthOutput{Email: creds.Email}, nil
}

// ListUserOrders resolves the user, then returns their orders annotated with
// the referenced product names. Orders whose product has since been deleted
// come back with an empty name rather than failing the whole listing.
func (srv *userService) ListUserOrders(ctx context.Context, userID string) ([]*usecase.EnrichedOrderOutput, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, mapUserStoreError(err, "failed to resolve user for order listing")
	}

	orders, err := srv.orderRepo.FindEnrichedByUser(ctx, userID)
	if err != nil {
		// The enrichment runs against the orders collection, but a bad id
		// here still names the user role.
		return nil, mapUserStoreError(err, "failed to list enriched orders")
	}

	outputs := make([]*usecase.EnrichedOrderOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, toEnrichedOrderOutput(order))
	}

	return outputs, nil
}

func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		CPF:               user.CPF,
		CreationTimestamp: user.CreationTimestamp,
		UpdatedTimestamp:  user.UpdatedTimestamp,
	}
}

func toEnrichedOrderOutput(order *entity.EnrichedOrder) *usecase.EnrichedOrderOutput {
	return &usecase.EnrichedOrderOutput{
		ID:                order.ID,
		ProductID:         order.ProductID,
		ProductName:       order.ProductName,
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
