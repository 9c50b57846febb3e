package models

import "time"

// User is an account holder. Status tracks email verification: accounts
// are created unverified and flip to true when the confirmation link is
// visited.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"user_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	PhoneNumber  string    `gorm:"size:255;not null" json:"phone_number"`
	Address      string    `gorm:"size:255" json:"address"`
	ProfileImage string    `gorm:"size:255" json:"profile_image"`
	Status       bool      `gorm:"default:false" json:"status"`
	CreatedAt    time.Time `json:"created_at"`

	Cards          []Card          `gorm:"foreignKey:UserID" json:"-"`
	PasswordResets []PasswordReset `gorm:"foreignKey:UserID" json:"-"`
}

// PasswordReset holds one outstanding reset code for a user. A new
// request replaces any previous row, so at most one row per user is
// live at a time.
type PasswordReset struct {
	ID     uint `gorm:"primaryKey" json:"password_reset_id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
	Code   int  `gorm:"uniqueIndex;not null" json:"code"`
}
