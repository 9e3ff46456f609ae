package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  CreateUserRequest{Name: "A", Email: "a@x.com"},
		},
		{
			name:    "missing name",
			req:     CreateUserRequest{Email: "a@x.com"},
			wantErr: "name is required",
		},
		{
			name:    "missing email",
			req:     CreateUserRequest{Name: "A"},
			wantErr: "email is required",
		},
		{
			name:    "empty everything",
			req:     CreateUserRequest{},
			wantErr: "required",
		},
		{
			// any non-empty email string is accepted; format is not
			// validated, only presence and uniqueness
			name: "non-address email accepted",
			req:  CreateUserRequest{Name: "A", Email: "not-an-email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
