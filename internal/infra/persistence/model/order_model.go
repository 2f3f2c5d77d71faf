package model

import (
	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderModel mirrors the 'orders' collection. ProductID and UserID are kept
// as hex strings, matching how the upstream clients wrote them; the
// enrichment pipeline converts ProductID to an ObjectID inside its lookup.
type OrderModel struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	ProductID         string             `bson:"productId"`
	UserID            string             `bson:"userId"`
	Quantity          int                `bson:"quantity"`
	ZipCode           string             `bson:"zipCode"`
	StreetNumber      int                `bson:"streetNumber"`
	Complement        string             `bson:"complement,omitempty"`
	TotalValue        float64            `bson:"totalValue"`
	CreationTimestamp string             `bson:"creationTimestamp,omitempty"`
	UpdatedTimestamp  string             `bson:"updatedTimestamp,omitempty"`
}

// CollectionName is the collection backing OrderModel.
func (OrderModel) CollectionName() string {
	return "orders"
}

// EnrichedOrderModel is the aggregation output shape: an order plus the
// unwound product-name lookup. ProductName is nil when the referenced
// product no longer exists (the unwind preserves empty lookups).
type EnrichedOrderModel struct {
	OrderModel  `bson:",inline"`
	ProductName *struct {
		Name string `bson:"name"`
	} `bson:"productName,omitempty"`
}

// ToOrderDomain maps a persistence model back to a pure domain entity.
func ToOrderDomain(m *OrderModel) *entity.Order {
	id := ""
	if !m.ID.IsZero() {
		id = m.ID.Hex()
	}

	return &entity.Order{
		ID:                id,
		ProductID:         m.ProductID,
		UserID:            m.UserID,
		Quantity:          m.Quantity,
		ZipCode:           m.ZipCode,
		StreetNumber:      m.StreetNumber,
		Complement:        m.Complement,
		TotalValue:        m.TotalValue,
		CreationTimestamp: m.CreationTimestamp,
		UpdatedTimestamp:  m.UpdatedTimestamp,
	}
}

// ToEnrichedOrderDomain maps the aggregation output. A zero-match lookup
// yields an empty product name instead of a nil dereference.
func ToEnrichedOrderDomain(m *EnrichedOrderModel) *entity.EnrichedOrder {
	enriched := &entity.EnrichedOrder{Order: *ToOrderDomain(&m.OrderModel)}
	if m.ProductName != nil {
		enriched.ProductName = m.ProductName.Name
	}

	return enriched
}

// FromOrderDomain maps a domain entity to a persistence model.
func FromOrderDomain(order *entity.Order) (*OrderModel, error) {
	m := &OrderModel{
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

	if order.ID != "" {
		oid, err := primitive.ObjectIDFromHex(order.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
