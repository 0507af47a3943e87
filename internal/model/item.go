package model

import "time"

// Item — серверная модель записи пользователя.
// UserID и CreatedAt выставляются один раз при создании и дальше не меняются.
type Item struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"userId"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title       string `json:"title"`
	Description string `json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
