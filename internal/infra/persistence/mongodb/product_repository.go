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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements the repository.ProductRepository interface on
// top of the 'products' collection.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{
		coll: db.Collection(model.ProductModel{}.CollectionName()),
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := model.FromProductDomain(product)
	if err != nil {
		return repository.ErrInvalidID
	}

	res, err := repo.coll.InsertOne(ctx, productM)
	if err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid.Hex()
	}

	return nil
}

// FindByID retrieves a single product by id.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var productM model.ProductModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return model.ToProductDomain(&productM), nil
}

// FindAll retrieves every product.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}
	defer cursor.Close(ctx)

	var productMs []model.ProductModel
	if err := cursor.All(ctx, &productMs); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, model.ToProductDomain(&productMs[i]))
	}

	return products, nil
}

// FindPriceByID retrieves only the price field, the projection the order
// pricing step needs.
func (repo *productRepository) FindPriceByID(ctx context.Context, id string) (float64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	var productM model.ProductModel
	err = repo.coll.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"price": 1}),
	).Decode(&productM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, repository.ErrProductNotFound
		}

		return 0, errors.Wrap(err, "failed to find product price")
	}

	return productM.Price, nil
}

// Update applies the full updatable product field set via $set and reports a
// zero matched count as not-found.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	oid, err := parseObjectID(product.ID)
	if err != nil {
		return err
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":             product.Name,
		"brand":            product.Brand,
		"size":             product.Size,
		"price":            product.Price,
		"url":              product.URL,
		"updatedTimestamp": product.UpdatedTimestamp,
	}})
	if err != nil {
		return errors.Wrap(err, "failed to update product")
	}
	if res.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by id.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
