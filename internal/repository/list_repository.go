package repository

import (
	"context"

	"taskboard/internal/model"

	"gorm.io/gorm"
)

type ListRepository struct {
	db *gorm.DB
}

type ListRepositoryInterface interface {
	Create(ctx context.Context, list *model.List) error
	GetByBoardID(ctx context.Context, boardID int64) ([]model.List, error)
}

var _ ListRepositoryInterface = (*ListRepository)(nil)

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	return createLinked(ctx, r.db, list)
}

func (r *ListRepository) GetByBoardID(ctx context.Context, boardID int64) ([]model.List, error) {
	lists := []model.List{}
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("id").Find(&lists).Error
	return lists, err
}
