package model

type User struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`
}

func (User) TableName() string { return "user" }
