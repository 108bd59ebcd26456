package model

import (
	"time"
)

type Card struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	ListID      int64     `gorm:"not null;index" json:"list_id"`
	CreatedBy   *int64    `json:"created_by"`
}

func (Card) TableName() string { return "card" }

func (c *Card) Key() int64 { return c.ID }

// CardUser links a user to a card. The creator of a card is its owner.
type CardUser struct {
	CardID  int64 `gorm:"primaryKey;autoIncrement:false" json:"card_id"`
	UserID  int64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	IsOwner bool  `gorm:"not null" json:"is_owner"`
}

func (CardUser) TableName() string { return "carduser" }
