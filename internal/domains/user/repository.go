package user

import "context"

// Repository is the data-access contract for users.
type Repository interface {
	FindAll(ctx context.Context) ([]User, error)

	// FindByID returns (nil, nil) when the id is malformed or the
	// document is absent; the caller cannot tell the two apart.
	FindByID(ctx context.Context, id string) (*User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts the user and returns it with the assigned id.
	// A unique-index rejection surfaces as ErrEmailAlreadyExists.
	Create(ctx context.Context, u *User) (*User, error)
}
