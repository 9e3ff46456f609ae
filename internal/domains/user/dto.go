package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateUserRequest is the POST /users payload.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate fails closed: missing or empty required fields are
// rejected before any business logic runs. Email format is not
// checked; any non-empty string is accepted and uniqueness is the
// only constraint on it.
func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
		),
	)
}
