package model

import "time"

// User — серверная модель зарегистрированного пользователя.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt-хеш, наружу не отдаём

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
