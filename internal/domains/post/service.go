package post

import "context"

// Service enforces the business rules for posts: input validation,
// author resolution and canonical response-shape construction.
type Service interface {
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)
}
