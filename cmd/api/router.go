package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"qrfood-backend/internal/shared/middleware"
	"qrfood-backend/internal/shared/response"
	"qrfood-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", homeHandler(c))
	router.GET("/health", healthCheckHandler(c))

	users := router.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.GET("/:id", c.UserHandler.GetByID)
		users.POST("", c.UserHandler.Create)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:id", c.PostHandler.GetByID)
		posts.POST("", c.PostHandler.Create)
	}

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Endpoint not found")
	})

	return router
}

// homeHandler serves the welcome message with the endpoint catalogue.
func homeHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the QRFood Backend API",
			"version": appCtx.Config.App.Version,
			"endpoints": gin.H{
				"GET /":          "This welcome message",
				"GET /health":    "Health check",
				"GET /users":     "Get all users",
				"GET /users/:id": "Get user by ID",
				"POST /users":    "Create a new user",
				"GET /posts":     "Get all posts",
				"GET /posts/:id": "Get post by ID",
				"POST /posts":    "Create a new post",
			},
		})
	}
}

// healthCheckHandler never fails; store reachability is reported
// inline in the database field.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		if appCtx.DB == nil {
			dbStatus = "disconnected"
		} else if err := appCtx.DB.HealthCheck(c.Request.Context()); err != nil {
			dbStatus = fmt.Sprintf("disconnected: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
