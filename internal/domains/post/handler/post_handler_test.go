package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qrfood-backend/internal/domains/post"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context) ([]post.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]post.Post), args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id string) (*post.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*post.Post), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *post.CreatePostRequest) (*post.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*post.Post), args.Error(1)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(svc post.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(svc)

	r := gin.New()
	r.GET("/posts", h.List)
	r.GET("/posts/:id", h.GetByID)
	r.POST("/posts", h.Create)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestList_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything).Return([]post.Post{
		{ID: "65f000000000000000000010", Title: "Welcome", AuthorID: "65f000000000000000000001"},
	}, nil)

	w, env := doRequest(t, setupRouter(svc), http.MethodGet, "/posts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, "not-a-valid-id").Return(nil, post.ErrPostNotFound)

	w, env := doRequest(t, setupRouter(svc), http.MethodGet, "/posts/not-a-valid-id", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	// casing matches the public error field verbatim
	assert.Equal(t, "Post not found", env.Error)
}

func TestCreate_Created(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.Anything).Return(&post.Post{
		ID:        "65f000000000000000000010",
		Title:     "Hello",
		Content:   "World",
		AuthorID:  "65f000000000000000000001",
		CreatedAt: "2025-01-01T00:00:00Z",
	}, nil)

	w, env := doRequest(t, setupRouter(svc), http.MethodPost, "/posts",
		`{"title":"Hello","content":"World","author_id":"65f000000000000000000001"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Post created successfully", env.Message)

	var p post.Post
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.NotEmpty(t, p.ID)
}

func TestCreate_AuthorNotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, post.ErrAuthorNotFound)

	w, env := doRequest(t, setupRouter(svc), http.MethodPost, "/posts",
		`{"title":"Hello","content":"World","author_id":"65f000000000000000000099"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Author not found", env.Error)
}

func TestCreate_StoreFault(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	w, env := doRequest(t, setupRouter(svc), http.MethodPost, "/posts",
		`{"title":"Hello","content":"World","author_id":"65f000000000000000000001"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", env.Error)
}
