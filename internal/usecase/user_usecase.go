// Package usecase defines the application's business-logic interfaces and
// their input/output DTOs.
package usecase

import (
	"context"
)

// RequiredUserFields is the per-operation required-attribute list for user
// creation; only key presence is checked at the boundary.
var RequiredUserFields = []string{"name", "email", "cpf", "password"}

// RequiredUserUpdateFields is the required-attribute list for user updates.
var RequiredUserUpdateFields = []string{"name", "cpf"}

// CreateUserInput carries the user creation payload.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// UpdateUserInput carries the partial field set a user update accepts.
type UpdateUserInput struct {
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

// AuthInput carries the credential pair for the authentication check.
type AuthInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserOutput is the outward user projection. It never carries the password.
type UserOutput struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	CPF               string `json:"cpf"`
	CreationTimestamp string `json:"creationTimestamp,omitempty"`
	UpdatedTimestamp  string `json:"updatedTimestamp,omitempty"`
}

// AuthOutput is the response of a successful authentication check. The
// password is excluded from successful and unsuccessful responses alike.
type AuthOutput struct {
	Email string `json:"email"`
}

// EnrichedOrderOutput is an order annotated with the referenced product's
// display name for the per-user order listing.
type EnrichedOrderOutput struct {
	ID                string  `json:"id"`
	ProductID         string  `json:"productId"`
	ProductName       string  `json:"productName"`
	UserID            string  `json:"userId"`
	Quantity          int     `json:"quantity"`
	ZipCode           string  `json:"zipCode"`
	StreetNumber      int     `json:"streetNumber"`
	Complement        string  `json:"complement,omitempty"`
	TotalValue        float64 `json:"totalValue"`
	CreationTimestamp string  `json:"creationTimestamp,omitempty"`
	UpdatedTimestamp  string  `json:"updatedTimestamp,omitempty"`
}

// UserUsecase defines the business operations around users.
type UserUsecase interface {
	// CreateUser validates and persists a new user. A duplicate email is
	// rejected by the store's unique constraint.
	CreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error)

	// ListUsers returns every user without password or id.
	ListUsers(ctx context.Context) ([]*UserOutput, error)

	// GetUser returns a single user without the password.
	GetUser(ctx context.Context, id string) (*UserOutput, error)

	// UpdateUser applies the partial update field set.
	UpdateUser(ctx context.Context, id string, input *UpdateUserInput) error

	// DeleteUser removes a user after confirming it exists.
	DeleteUser(ctx context.Context, id string) error

	// Authenticate compares the submitted credential pair against the stored
	// one by equality. An unknown email and a wrong password fail
	// differently (404 vs 401).
	Authenticate(ctx context.Context, input *AuthInput) (*AuthOutput, error)

	// ListUserOrders returns the user's orders enriched with product names.
	ListUserOrders(ctx context.Context, userID string) ([]*EnrichedOrderOutput, error)
}
