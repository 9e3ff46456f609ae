package service

import (
	"context"
	"fmt"
	"time"

	"qrfood-backend/internal/domains/post"
	"qrfood-backend/internal/domains/user"
	"qrfood-backend/pkg/logger"
)

type postServiceImpl struct {
	repository post.Repository
	users      user.Repository
}

// NewPostService wires the post business rules on top of the post
// repository and the user repository used for author resolution.
func NewPostService(repo post.Repository, users user.Repository) post.Service {
	return &postServiceImpl{repository: repo, users: users}
}

func (s *postServiceImpl) List(ctx context.Context) ([]post.Post, error) {
	posts, err := s.repository.FindAll(ctx)
	if err != nil {
		logger.Error("List: fetch posts failed", err)
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *postServiceImpl) GetByID(ctx context.Context, id string) (*post.Post, error) {
	p, err := s.repository.FindByID(ctx, id)
	if err != nil {
		logger.Error("GetByID: fetch post failed", err)
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (s *postServiceImpl) Create(ctx context.Context, req *post.CreatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The author must exist at this point in time. There is no guard
	// against the author disappearing between this check and the
	// insert; deletion is not part of this system's contract.
	author, err := s.users.FindByID(ctx, req.AuthorID)
	if err != nil {
		logger.Error("Create: author lookup failed", err)
		return nil, fmt.Errorf("create post: %w", err)
	}
	if author == nil {
		return nil, post.ErrAuthorNotFound
	}

	created, err := s.repository.Create(ctx, &post.Post{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("Create: insert post failed", err)
		return nil, fmt.Errorf("create post: %w", err)
	}

	logger.Info("Post created", map[string]interface{}{
		"id":        created.ID,
		"author_id": created.AuthorID,
	})
	return created, nil
}
