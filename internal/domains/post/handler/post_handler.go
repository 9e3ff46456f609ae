package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrfood-backend/internal/domains/post"
	"qrfood-backend/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{service: svc}
}

// List handles GET /posts.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.List(c, posts, len(posts))
}

// GetByID handles GET /posts/:id.
func (h *PostHandler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, p)
}

// Create handles POST /posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title, content and author_id are required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Post created successfully", created)
}

func respondError(c *gin.Context, err error) {
	status := post.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Fail(c, status, err.Error())
}
