package mongodb

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// orderRepository implements the repository.OrderRepository interface on top
// of the 'orders' collection.
type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{
		coll: db.Collection(model.OrderModel{}.CollectionName()),
	}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := model.FromOrderDomain(order)
	if err != nil {
		return repository.ErrInvalidID
	}

	res, err := repo.coll.InsertOne(ctx, orderM)
	if err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid.Hex()
	}

	return nil
}

// FindByID retrieves a single order by id.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var orderM model.OrderModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&orderM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return model.ToOrderDomain(&orderM), nil
}

// FindAll retrieves every order.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}
	defer cursor.Close(ctx)

	var orderMs []model.OrderModel
	if err := cursor.All(ctx, &orderMs); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, model.ToOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// FindEnrichedByUser runs the join-like aggregation: match the user's
// orders, look up each referenced product by converting the stored hex id to
// an ObjectID, project the product name, and unwind while preserving orders
// whose lookup came back empty (the product may have been deleted since).
func (repo *orderRepository) FindEnrichedByUser(ctx context.Context, userID string) ([]*entity.EnrichedOrder, error) {
	if _, err := parseObjectID(userID); err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "userId", Value: userID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.ProductModel{}.CollectionName()},
			{Key: "as", Value: "productName"},
			{Key: "let", Value: bson.D{
				{Key: "id", Value: bson.D{{Key: "$toObjectId", Value: "$productId"}}},
			}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$eq", Value: bson.A{"$_id", "$$id"}},
					}},
				}}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "name", Value: 1}}}},
			}},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$productName"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate enriched orders")
	}
	defer cursor.Close(ctx)

	var orderMs []model.EnrichedOrderModel
	if err := cursor.All(ctx, &orderMs); err != nil {
		return nil, errors.Wrap(err, "failed to decode enriched orders")
	}

	orders := make([]*entity.EnrichedOrder, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, model.ToEnrichedOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// CountByProduct reports how many orders reference the given product id.
func (repo *orderRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.M{"productId": productID})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders by product")
	}

	return count, nil
}

// Update applies the full updatable order field set via $set and reports a
// zero matched count as not-found.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	oid, err := parseObjectID(order.ID)
	if err != nil {
		return err
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"productId":        order.ProductID,
		"userId":           order.UserID,
		"quantity":         order.Quantity,
		"zipCode":          order.ZipCode,
		"streetNumber":     order.StreetNumber,
		"complement":       order.Complement,
		"totalValue":       order.TotalValue,
		"updatedTimestamp": order.UpdatedTimestamp,
	}})
	if err != nil {
		return errors.Wrap(err, "failed to update order")
	}
	if res.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order by id.
func (repo *orderRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}
