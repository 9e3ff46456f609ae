package container

import (
	"context"
	"fmt"
	"time"

	"qrfood-backend/internal/config"
	"qrfood-backend/internal/infrastructure/database"
	"qrfood-backend/pkg/logger"

	"qrfood-backend/internal/domains/post"
	postHandler "qrfood-backend/internal/domains/post/handler"
	postRepo "qrfood-backend/internal/domains/post/repository"
	postService "qrfood-backend/internal/domains/post/service"
	"qrfood-backend/internal/domains/user"
	userHandler "qrfood-backend/internal/domains/user/handler"
	userRepo "qrfood-backend/internal/domains/user/repository"
	userService "qrfood-backend/internal/domains/user/service"
)

// Container holds the application's dependency graph. Everything in
// it is a singleton living for the process lifetime; in particular
// the store handle is established once and shared across requests.
type Container struct {
	Config *config.Config
	DB     *database.Mongo

	UserRepo user.Repository
	PostRepo post.Repository

	UserService user.Service
	PostService post.Service

	UserHandler *userHandler.UserHandler
	PostHandler *postHandler.PostHandler
}

// NewContainer initializes the dependency graph in order:
// config, store, repositories, services, handlers. A connect failure
// is returned to the caller, which aborts the process.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db, err := database.Connect(context.Background(), &database.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
		PingTimeout:    cfg.Mongo.PingTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.UserRepo = userRepo.NewMongoRepository(db)
	c.PostRepo = postRepo.NewMongoRepository(db)

	c.UserService = userService.NewUserService(c.UserRepo)
	c.PostService = postService.NewPostService(c.PostRepo, c.UserRepo)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)

	return c, nil
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.DB.Close(ctx); err != nil {
		logger.Error("Failed to close database connection", err)
	}
}
