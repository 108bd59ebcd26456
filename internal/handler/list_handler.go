package handler

import (
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	listRepo repository.ListRepositoryInterface
}

func NewListHandler(listRepo repository.ListRepositoryInterface) *ListHandler {
	return &ListHandler{listRepo: listRepo}
}

type CreateListRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

type ListResponse struct {
	List model.List `json:"list"`
}

type ListsResponse struct {
	Lists []model.List `json:"lists"`
}

// GetByBoard godoc
// @Summary  Lists of a board
// @Tags     Lists
// @Produce  json
// @Param    id   path      int  true  "Board ID"
// @Success  200  {object}  ListsResponse
// @Failure  500  {object}  ErrorResponse
// @Router   /boards/{id}/lists [get]
func (h *ListHandler) GetByBoard(c *gin.Context) {
	boardID, ok := pathID(c, "id", "board")
	if !ok {
		return
	}

	lists, err := h.listRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		internalError(c, "Failed to retrieve lists", err)
		return
	}

	c.JSON(http.StatusOK, ListsResponse{Lists: lists})
}

// Create godoc
// @Summary  Create a list on a board
// @Tags     Lists
// @Accept   json
// @Produce  json
// @Param    id    path      int                true  "Board ID"
// @Param    list  body      CreateListRequest  true  "New list"
// @Success  200   {object}  ListResponse
// @Failure  422   {object}  ValidationErrorResponse
// @Failure  500   {object}  ErrorResponse
// @Router   /boards/{id}/lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	boardID, ok := pathID(c, "id", "board")
	if !ok {
		return
	}

	var req CreateListRequest
	if !bindJSON(c, &req) {
		return
	}

	list := &model.List{Name: req.Name, BoardID: boardID}
	if err := h.listRepo.Create(c.Request.Context(), list); err != nil {
		internalError(c, "Failed to create list", err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{List: *list})
}
