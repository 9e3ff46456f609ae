package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePostRequest_Validate(t *testing.T) {
	valid := CreatePostRequest{
		Title:    "Hello",
		Content:  "World",
		AuthorID: "65f000000000000000000001",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		req     CreatePostRequest
		wantErr string
	}{
		{"missing title", CreatePostRequest{Content: "c", AuthorID: "x"}, "title is required"},
		{"missing content", CreatePostRequest{Title: "t", AuthorID: "x"}, "content is required"},
		{"missing author_id", CreatePostRequest{Title: "t", Content: "c"}, "author_id is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreatePostRequest_AuthorIDFormatNotChecked(t *testing.T) {
	// a syntactically bogus author_id passes validation; it is the
	// service's author lookup that rejects it
	req := CreatePostRequest{Title: "t", Content: "c", AuthorID: "garbage"}
	assert.NoError(t, req.Validate())
}
