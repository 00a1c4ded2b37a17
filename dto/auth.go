package dto

import "github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is what the auth service answers to a login
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}

// CurrentUserResponse is the body of GET /users/currentUser
type CurrentUserResponse struct {
	User models.User `json:"user"`
}

type RegisterInput struct {
	Username string         `json:"username" binding:"required" validate:"required,min=3"`
	Password string         `json:"password" binding:"required" validate:"required,password_strength"`
	Email    string         `json:"email" binding:"required" validate:"required,email"`
	Name     string         `json:"name" binding:"required"`
	Lastname string         `json:"lastname" binding:"required"`
	Address  models.Address `json:"address"`
	Age      int            `json:"age" validate:"omitempty,gte=0,lte=130"`
	Gender   string         `json:"gender"`
	UserRole string         `json:"userRole" binding:"required" validate:"required,oneof=Host Guest"`
}

type ForgetPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	PasswordResetToken string `json:"passwordResetToken"`
	Password           string `json:"password" binding:"required" validate:"required,password_strength"`
	PasswordConfirm    string `json:"passwordConfirm" binding:"required" validate:"required,eqfield=Password"`
}

// PasswordStrengthResponse reports the level of a candidate password
type PasswordStrengthResponse struct {
	Strength string `json:"strength"`
}
