package post

import "context"

// Repository is the data-access contract for posts.
type Repository interface {
	FindAll(ctx context.Context) ([]Post, error)

	// FindByID returns (nil, nil) when the id is malformed or the
	// document is absent.
	FindByID(ctx context.Context, id string) (*Post, error)

	// Create inserts the post and returns it with the assigned id.
	Create(ctx context.Context, p *Post) (*Post, error)
}
