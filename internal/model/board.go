package model

type Board struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Board) TableName() string { return "board" }

func (b *Board) Key() int64 { return b.ID }

// BoardUser links a user to a board. The user who creates a board is its admin.
type BoardUser struct {
	BoardID int64 `gorm:"primaryKey;autoIncrement:false" json:"board_id"`
	UserID  int64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	IsAdmin bool  `gorm:"not null" json:"is_admin"`
}

func (BoardUser) TableName() string { return "boarduser" }
