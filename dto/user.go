package dto

import "blogdeck/models"

type SignUpRequestDTO struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

type UpdateUserRequestDTO struct {
	UserID      string `json:"userId" example:"64f1c0ffee0ddba11ad0beef"`
	NewEmail    string `json:"newEmail" example:"alice2@example.com"`
	NewUsername string `json:"newUsername" example:"alice2"`
	NewPassword string `json:"newPassword" example:"n3w-s3cret"`
}

// UserProfileDTO is the single-user read shape; it never carries the
// password digest.
type UserProfileDTO struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
}

type UserResponseDTO struct {
	Message string      `json:"message" example:"User created successfully"`
	User    models.User `json:"user"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token"`
}
