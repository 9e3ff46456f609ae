package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qrfood-backend/internal/domains/user"
	"qrfood-backend/pkg/logger"
)

type userServiceImpl struct {
	repository user.Repository
}

// NewUserService wires the user business rules on top of a repository.
func NewUserService(repo user.Repository) user.Service {
	return &userServiceImpl{repository: repo}
}

func (s *userServiceImpl) List(ctx context.Context) ([]user.User, error) {
	users, err := s.repository.FindAll(ctx)
	if err != nil {
		logger.Error("List: fetch users failed", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userServiceImpl) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, err := s.repository.FindByID(ctx, id)
	if err != nil {
		logger.Error("GetByID: fetch user failed", err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (s *userServiceImpl) Create(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Pre-check for a friendlier error; two concurrent creates with
	// the same email can both pass here, and the unique index decides
	// the race at insert time.
	exists, err := s.repository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("Create: email check failed", err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	created, err := s.repository.Create(ctx, &user.User{
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, err
		}
		logger.Error("Create: insert user failed", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info("User created", map[string]interface{}{
		"id":    created.ID,
		"email": created.Email,
	})
	return created, nil
}
