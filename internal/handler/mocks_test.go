package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board, adminID int64) error {
	args := m.Called(ctx, board, adminID)
	return args.Error(0)
}

func (m *MockBoardRepository) AddUser(ctx context.Context, boardID, userID int64) error {
	args := m.Called(ctx, boardID, userID)
	return args.Error(0)
}

type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) GetByBoardID(ctx context.Context, boardID int64) ([]model.List, error) {
	args := m.Called(ctx, boardID)
	lists, _ := args.Get(0).([]model.List)
	return lists, args.Error(1)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card, ownerID int64) error {
	args := m.Called(ctx, card, ownerID)
	return args.Error(0)
}

func (m *MockCardRepository) GetByListID(ctx context.Context, listID int64) ([]model.Card, error) {
	args := m.Called(ctx, listID)
	cards, _ := args.Get(0).([]model.Card)
	return cards, args.Error(1)
}

func (m *MockCardRepository) OwnerName(ctx context.Context, cardID int64) (string, error) {
	args := m.Called(ctx, cardID)
	return args.String(0), args.Error(1)
}

func (m *MockCardRepository) CreatorName(ctx context.Context, cardID int64) (string, error) {
	args := m.Called(ctx, cardID)
	return args.String(0), args.Error(1)
}

func (m *MockCardRepository) AddUser(ctx context.Context, cardUser *model.CardUser) error {
	args := m.Called(ctx, cardUser)
	return args.Error(0)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonBody, _ := json.Marshal(b)
		reader = bytes.NewReader(jsonBody)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
