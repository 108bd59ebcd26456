package model

type List struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	BoardID int64  `gorm:"not null;index" json:"board_id"`
}

func (List) TableName() string { return "list" }

func (l *List) Key() int64 { return l.ID }
