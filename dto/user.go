package dto

import "github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"

type ProfileUpdate struct {
	Username string         `json:"username,omitempty"`
	Email    string         `json:"email,omitempty" validate:"omitempty,email"`
	Name     string         `json:"name,omitempty"`
	Lastname string         `json:"lastname,omitempty"`
	Address  models.Address `json:"address"`
	Age      int            `json:"age,omitempty" validate:"omitempty,gte=0,lte=130"`
	Gender   string         `json:"gender,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword    string `json:"current_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required" validate:"required,password_strength"`
	ConfirmNewPassword string `json:"confirm_new_password" binding:"required" validate:"required,eqfield=NewPassword"`
}
