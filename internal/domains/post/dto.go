package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePostRequest is the POST /posts payload.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`
}

// Validate fails closed on missing or empty required fields. The
// author_id format is not checked here; an id that does not resolve
// to a user is rejected by the service.
func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
		),
	)
}
