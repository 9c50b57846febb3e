package dto

import (
	"time"

	"niddle_backend/internal/models"
)

// RegisterRequest arrives as multipart form data; the optional profile
// image travels as a separate file part.
type RegisterRequest struct {
	Name            string `form:"name" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
	PhoneNumber     string `form:"phone_number" binding:"required"`
	Address         string `form:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by login.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// PasswordResetRequest carries the new credentials plus the emailed code.
type PasswordResetRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Code            int    `json:"code" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type UserResponse struct {
	ID           uint      `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Address      string    `json:"address"`
	ProfileImage string    `json:"profile_image"`
	Status       bool      `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		Address:      user.Address,
		ProfileImage: user.ProfileImage,
		Status:       user.Status,
		CreatedAt:    user.CreatedAt,
	}
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Meta  PageMeta       `json:"meta"`
}
