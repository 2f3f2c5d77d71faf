// Package model contains the BSON persistence models and their mapping to
// domain entities.
package model

import (
	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors the 'users' collection. The email field carries a unique
// index; the store rejects duplicate registrations with a duplicate-key error.
type UserModel struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Email             string             `bson:"email"`
	CPF               string             `bson:"cpf"`
	Password          string             `bson:"password,omitempty"`
	CreationTimestamp string             `bson:"creationTimestamp,omitempty"`
	UpdatedTimestamp  string             `bson:"updatedTimestamp,omitempty"`
}

// CollectionName is the collection backing UserModel.
func (UserModel) CollectionName() string {
	return "users"
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	id := ""
	if !m.ID.IsZero() {
		id = m.ID.Hex()
	}

	return &entity.User{
		ID:                id,
		Name:              m.Name,
		Email:             m.Email,
		CPF:               m.CPF,
		Password:          m.Password,
		CreationTimestamp: m.CreationTimestamp,
		UpdatedTimestamp:  m.UpdatedTimestamp,
	}
}

// FromUserDomain maps a domain entity to a persistence model. A blank id maps
// to the zero ObjectID so the store assigns one on insert.
func FromUserDomain(user *entity.User) (*UserModel, error) {
	m := &UserModel{
		Name:              user.Name,
		Email:             user.Email,
		CPF:               user.CPF,
		Password:          user.Password,
		CreationTimestamp: user.CreationTimestamp,
		UpdatedTimestamp:  user.UpdatedTimestamp,
	}

	if user.ID != "" {
		oid, err := primitive.ObjectIDFromHex(user.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
