package model

import (
	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductModel mirrors the 'products' collection.
type ProductModel struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Brand             string             `bson:"brand"`
	Size              string             `bson:"size"`
	Price             float64            `bson:"price"`
	URL               string             `bson:"url"`
	CreationTimestamp string             `bson:"creationTimestamp,omitempty"`
	UpdatedTimestamp  string             `bson:"updatedTimestamp,omitempty"`
}

// CollectionName is the collection backing ProductModel.
func (ProductModel) CollectionName() string {
	return "products"
}

// ToProductDomain maps a persistence model back to a pure domain entity.
func ToProductDomain(m *ProductModel) *entity.Product {
	id := ""
	if !m.ID.IsZero() {
		id = m.ID.Hex()
	}

	return &entity.Product{
		ID:                id,
		Name:              m.Name,
		Brand:             m.Brand,
		Size:              m.Size,
		Price:             m.Price,
		URL:               m.URL,
		CreationTimestamp: m.CreationTimestamp,
		UpdatedTimestamp:  m.UpdatedTimestamp,
	}
}

// FromProductDomain maps a domain entity to a persistence model.
func FromProductDomain(product *entity.Product) (*ProductModel, error) {
	m := &ProductModel{
		Name:              product.Name,
		Brand:             product.Brand,
		Size:              product.Size,
		Price:             product.Price,
		URL:               product.URL,
		CreationTimestamp: product.CreationTimestamp,
		UpdatedTimestamp:  product.UpdatedTimestamp,
	}

	if product.ID != "" {
		oid, err := primitive.ObjectIDFromHex(product.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
