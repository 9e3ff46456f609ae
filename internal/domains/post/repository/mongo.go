package repository

import (
	"context"
	"fmt"

	"qrfood-backend/internal/domains/post"
	"qrfood-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	store *database.Mongo
}

// NewMongoRepository creates the posts repository backed by the
// shared store adapter.
func NewMongoRepository(store *database.Mongo) post.Repository {
	return &mongoRepository{store: store}
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]post.Post, error) {
	docs, err := r.store.FindAll(ctx, database.PostsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	posts := make([]post.Post, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, *post.FromDocument(doc))
	}
	return posts, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*post.Post, error) {
	doc, err := r.store.FindByID(ctx, database.PostsCollection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return post.FromDocument(doc), nil
}

func (r *mongoRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	doc, err := r.store.InsertOne(ctx, database.PostsCollection, p.Document())
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}
	return post.FromDocument(doc), nil
}
