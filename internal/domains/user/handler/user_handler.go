package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrfood-backend/internal/domains/user"
	"qrfood-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.List(c, users, len(users))
}

// GetByID handles GET /users/:id. A malformed id gets the same 404 as
// an absent one.
func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, u)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name and email are required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "User created successfully", created)
}

// respondError renders a domain error. Internal faults get a generic
// message; expected outcomes carry their own text.
func respondError(c *gin.Context, err error) {
	status := user.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Fail(c, status, err.Error())
}
