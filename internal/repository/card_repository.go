package repository

import (
	"context"

	"taskboard/internal/model"

	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card, ownerID int64) error
	GetByListID(ctx context.Context, listID int64) ([]model.Card, error)
	OwnerName(ctx context.Context, cardID int64) (string, error)
	CreatorName(ctx context.Context, cardID int64) (string, error)
	AddUser(ctx context.Context, cardUser *model.CardUser) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts the card, recording ownerID as its creator, together with an
// owner membership for the same user.
func (r *CardRepository) Create(ctx context.Context, card *model.Card, ownerID int64) error {
	card.CreatedBy = &ownerID
	return createLinked(ctx, r.db, card, func(cardID int64) any {
		return &model.CardUser{CardID: cardID, UserID: ownerID, IsOwner: true}
	})
}

func (r *CardRepository) GetByListID(ctx context.Context, listID int64) ([]model.Card, error) {
	cards := []model.Card{}
	err := r.db.WithContext(ctx).Where("list_id = ?", listID).Order("id").Find(&cards).Error
	return cards, err
}

func (r *CardRepository) OwnerName(ctx context.Context, cardID int64) (string, error) {
	var names []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.name
		FROM carduser cu
		JOIN "user" u ON cu.user_id = u.id
		WHERE cu.card_id = ? AND cu.is_owner = true
		ORDER BY u.id
		LIMIT 1`, cardID).Scan(&names).Error
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrOwnerNotFound
	}
	return names[0], nil
}

func (r *CardRepository) CreatorName(ctx context.Context, cardID int64) (string, error) {
	var names []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.name
		FROM card c
		JOIN "user" u ON c.created_by = u.id
		WHERE c.id = ?`, cardID).Scan(&names).Error
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrCreatorNotFound
	}
	return names[0], nil
}

// AddUser makes an existing user a member of an existing card.
func (r *CardRepository) AddUser(ctx context.Context, cardUser *model.CardUser) error {
	return insertLinks(ctx, r.db, cardUser)
}
