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

// userRepository implements the repository.UserRepository interface on top of
// the 'users' collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// Create persists a new user. The unique email index turns a duplicate
// registration into repository.ErrEmailTaken.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM, err := model.FromUserDomain(user)
	if err != nil {
		return repository.ErrInvalidID
	}

	res, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		if isDuplicateKeyError(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}

// FindByID retrieves a single user by id. The password field is excluded
// from the projection.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	err = repo.coll.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"password": 0}),
	).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return model.ToUserDomain(&userM), nil
}

// FindAll retrieves every user, excluding both password and id from the
// projection.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"password": 0, "_id": 0}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}
	defer cursor.Close(ctx)

	var userMs []model.UserModel
	if err := cursor.All(ctx, &userMs); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, model.ToUserDomain(&userMs[i]))
	}

	return users, nil
}

// FindCredentialsByEmail retrieves the email/password projection for the
// authentication check. No other read path may include the password.
func (repo *userRepository) FindCredentialsByEmail(ctx context.Context, email string) (*entity.Credentials, error) {
	var userM model.UserModel
	err := repo.coll.FindOne(ctx, bson.M{"email": email},
		options.FindOne().SetProjection(bson.M{"email": 1, "password": 1}),
	).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find credentials by email")
	}

	return &entity.Credentials{Email: userM.Email, Password: userM.Password}, nil
}

// Update applies the partial user field set via $set and reports a zero
// matched count as not-found.
func (repo *userRepository) Update(ctx context.Context, id string, name, cpf, updatedTimestamp string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":             name,
		"cpf":              cpf,
		"updatedTimestamp": updatedTimestamp,
	}})
	if err != nil {
		return errors.Wrap(err, "failed to update user")
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by id.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
