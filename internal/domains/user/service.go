package user

import "context"

// Service enforces the business rules for users: input validation,
// email uniqueness and canonical response-shape construction.
type Service interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)
}
