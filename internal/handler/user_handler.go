package handler

import (
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	repo repository.UserRepositoryInterface
}

func NewUserHandler(repo repository.UserRepositoryInterface) *UserHandler {
	return &UserHandler{repo: repo}
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email" binding:"required,email"`
}

// List godoc
// @Summary  List users
// @Tags     Users
// @Produce  json
// @Success  200  {array}   model.User
// @Failure  500  {object}  ErrorResponse
// @Router   /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to retrieve users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary  Create a user
// @Tags     Users
// @Accept   json
// @Produce  json
// @Param    user  body      CreateUserRequest  true  "New user"
// @Success  201   {object}  model.User
// @Failure  422   {object}  ValidationErrorResponse
// @Router   /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		internalError(c, "Failed to create user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
