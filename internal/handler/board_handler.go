package handler

import (
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface) *BoardHandler {
	return &BoardHandler{
		boardRepo: boardRepo,
	}
}

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// AssignUserRequest is the body of both membership routes.
type AssignUserRequest struct {
	UserID int64 `json:"userId" binding:"required,gt=0"`
}

type BoardResponse struct {
	Board model.Board `json:"board"`
}

// Create godoc
// @Summary  Create a board administered by a user
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    id     path      int                 true  "User ID"
// @Param    board  body      CreateBoardRequest  true  "New board"
// @Success  200    {object}  BoardResponse
// @Failure  422    {object}  ValidationErrorResponse
// @Failure  500    {object}  ErrorResponse
// @Router   /boards/{id} [post]
func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	var req CreateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board := &model.Board{Name: req.Name}
	if err := h.boardRepo.Create(c.Request.Context(), board, userID); err != nil {
		internalError(c, "Failed to create board", err)
		return
	}

	c.JSON(http.StatusOK, BoardResponse{Board: *board})
}

// AddUser godoc
// @Summary  Add a user to a board
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    id    path      int                true  "Board ID"
// @Param    user  body      AssignUserRequest  true  "User to add"
// @Success  200   {object}  MessageResponse
// @Failure  500   {object}  ErrorResponse
// @Router   /boards/{id}/users [post]
func (h *BoardHandler) AddUser(c *gin.Context) {
	boardID, ok := pathID(c, "id", "board")
	if !ok {
		return
	}

	var req AssignUserRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.boardRepo.AddUser(c.Request.Context(), boardID, req.UserID); err != nil {
		internalError(c, "Failed to assign user to board", err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User assigned to board"})
}
