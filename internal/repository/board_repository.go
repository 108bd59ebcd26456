package repository

import (
	"context"

	"taskboard/internal/model"

	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board, adminID int64) error
	AddUser(ctx context.Context, boardID, userID int64) error
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create inserts the board together with an admin membership for adminID.
func (r *BoardRepository) Create(ctx context.Context, board *model.Board, adminID int64) error {
	return createLinked(ctx, r.db, board, func(boardID int64) any {
		return &model.BoardUser{BoardID: boardID, UserID: adminID, IsAdmin: true}
	})
}

// AddUser makes an existing user a regular member of an existing board.
func (r *BoardRepository) AddUser(ctx context.Context, boardID, userID int64) error {
	return insertLinks(ctx, r.db, &model.BoardUser{BoardID: boardID, UserID: userID})
}
