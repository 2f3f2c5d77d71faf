package impl

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// The repositories report malformed ids and missing records with sentinel
// errors; each usecase maps them to role-naming application errors at its
// own call site, so an order create can blame "product" while a product
// lookup blames the path parameter.

func mapUserStoreError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return errors.WithStack(domainerrors.ErrInvalidUserID)
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.WithStack(domainerrors.ErrUserNotFound)
	case errors.Is(err, repository.ErrEmailTaken):
		return errors.WithStack(domainerrors.ErrEmailTaken)
	default:
		return domainerrors.NewStoreExecuteError(err, op)
	}
}

func mapProductStoreError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return errors.WithStack(domainerrors.ErrInvalidProductID)
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.WithStack(domainerrors.ErrProductNotFound)
	default:
		return domainerrors.NewStoreExecuteError(err, op)
	}
}

func mapOrderStoreError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return errors.WithStack(domainerrors.ErrInvalidOrderID)
	case errors.Is(err, repository.ErrOrderNotFound):
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	default:
		return domainerrors.NewStoreExecuteError(err, op)
	}
}
