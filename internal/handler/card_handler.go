package handler

import (
	"errors"
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardRepo repository.CardRepositoryInterface
}

func NewCardHandler(cardRepo repository.CardRepositoryInterface) *CardHandler {
	return &CardHandler{cardRepo: cardRepo}
}

type CreateCardRequest struct {
	Title       string `json:"title" binding:"required,notblank"`
	Description string `json:"description" binding:"required"`
	DueDate     string `json:"due_date" binding:"required,duedate"`
}

type CardResponse struct {
	Card model.Card `json:"card"`
}

// CardsResponse lists the cards of a list with the owner of its first card.
type CardsResponse struct {
	Cards     []model.Card `json:"cards"`
	OwnerName *string      `json:"ownerName"`
}

type CreatorResponse struct {
	CreatorName string `json:"creatorName"`
}

type CardUserResponse struct {
	Message  string         `json:"message"`
	CardUser model.CardUser `json:"cardUser"`
}

// Create godoc
// @Summary  Create a card owned by a user
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Param    id       path      int                true  "List ID"
// @Param    user_id  path      int                true  "User ID"
// @Param    card     body      CreateCardRequest  true  "New card"
// @Success  200      {object}  CardResponse
// @Failure  422      {object}  ValidationErrorResponse
// @Failure  500      {object}  ErrorResponse
// @Router   /lists/{id}/users/{user_id}/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	listID, ok := pathID(c, "id", "list")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id", "user")
	if !ok {
		return
	}

	var req CreateCardRequest
	if !bindJSON(c, &req) {
		return
	}

	// already checked by the duedate rule
	dueDate, _ := parseDueDate(req.DueDate)

	card := &model.Card{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		ListID:      listID,
	}

	if err := h.cardRepo.Create(c.Request.Context(), card, userID); err != nil {
		internalError(c, "Failed to create card", err)
		return
	}

	c.JSON(http.StatusOK, CardResponse{Card: *card})
}

// GetByList godoc
// @Summary  Cards of a list with the owner of the first card
// @Tags     Cards
// @Produce  json
// @Param    id   path      int  true  "List ID"
// @Success  200  {object}  CardsResponse
// @Failure  404  {object}  ErrorResponse
// @Failure  500  {object}  ErrorResponse
// @Router   /cards/{id} [get]
func (h *CardHandler) GetByList(c *gin.Context) {
	listID, ok := pathID(c, "id", "list")
	if !ok {
		return
	}

	cards, err := h.cardRepo.GetByListID(c.Request.Context(), listID)
	if err != nil {
		internalError(c, "Failed to retrieve cards", err)
		return
	}

	if len(cards) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No cards found for this list"})
		return
	}

	response := CardsResponse{Cards: cards}

	owner, err := h.cardRepo.OwnerName(c.Request.Context(), cards[0].ID)
	switch {
	case err == nil:
		response.OwnerName = &owner
	case !errors.Is(err, repository.ErrOwnerNotFound):
		internalError(c, "Failed to retrieve card owner", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCreator godoc
// @Summary  Name of the user who created a card
// @Tags     Cards
// @Produce  json
// @Param    id   path      int  true  "Card ID"
// @Success  200  {object}  CreatorResponse
// @Failure  404  {object}  ErrorResponse
// @Failure  500  {object}  ErrorResponse
// @Router   /cards/{id}/creator [get]
func (h *CardHandler) GetCreator(c *gin.Context) {
	cardID, ok := pathID(c, "id", "card")
	if !ok {
		return
	}

	name, err := h.cardRepo.CreatorName(c.Request.Context(), cardID)
	if errors.Is(err, repository.ErrCreatorNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Card creator not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to retrieve card creator", err)
		return
	}

	c.JSON(http.StatusOK, CreatorResponse{CreatorName: name})
}

// AddUser godoc
// @Summary  Add a user to a card
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Param    id    path      int                true  "Card ID"
// @Param    user  body      AssignUserRequest  true  "User to add"
// @Success  200   {object}  CardUserResponse
// @Failure  500   {object}  ErrorResponse
// @Router   /cards/{id}/users [post]
func (h *CardHandler) AddUser(c *gin.Context) {
	cardID, ok := pathID(c, "id", "card")
	if !ok {
		return
	}

	var req AssignUserRequest
	if !bindJSON(c, &req) {
		return
	}

	cardUser := &model.CardUser{CardID: cardID, UserID: req.UserID}
	if err := h.cardRepo.AddUser(c.Request.Context(), cardUser); err != nil {
		internalError(c, "Failed to assign user to card", err)
		return
	}

	c.JSON(http.StatusOK, CardUserResponse{Message: "User assigned to card", CardUser: *cardUser})
}
