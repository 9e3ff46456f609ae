package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"qrfood-backend/internal/domains/user"
	"qrfood-backend/internal/infrastructure/database"
	"qrfood-backend/pkg/logger"
)

type mongoRepository struct {
	store *database.Mongo
}

// NewMongoRepository creates the users repository backed by the
// shared store adapter.
func NewMongoRepository(store *database.Mongo) user.Repository {
	return &mongoRepository{store: store}
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]user.User, error) {
	docs, err := r.store.FindAll(ctx, database.UsersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	users := make([]user.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, *user.FromDocument(doc))
	}
	return users, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	doc, err := r.store.FindByID(ctx, database.UsersCollection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return user.FromDocument(doc), nil
}

func (r *mongoRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := r.store.Exists(ctx, database.UsersCollection, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *mongoRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	doc, err := r.store.InsertOne(ctx, database.UsersCollection, u.Document())
	if err != nil {
		if database.IsDuplicateKey(err) {
			// The pre-check raced; the unique index is the authority.
			logger.Error("Create: duplicate email rejected by index", err)
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return user.FromDocument(doc), nil
}
