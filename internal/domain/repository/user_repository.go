// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when the store's unique email constraint rejects
// a user creation.
var ErrEmailTaken = errors.New("email already taken")

// ErrInvalidID is returned when an identifier does not match the store's
// token format. Repositories reject such ids before attempting any lookup.
var ErrInvalidID = errors.New("invalid identifier")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity and fills in the assigned id.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by id, without the password field.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindAll retrieves every user, without password or id fields.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindCredentialsByEmail retrieves the email/password projection used by
	// the authentication check. This is the only read path that may include
	// the password.
	FindCredentialsByEmail(ctx context.Context, email string) (*entity.Credentials, error)

	// Update applies the partial field set of a user update. Returns
	// ErrUserNotFound when no record matched.
	Update(ctx context.Context, id string, name, cpf, updatedTimestamp string) error

	// Delete removes a user by id.
	Delete(ctx context.Context, id string) error
}
