package controllers

import (
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/response"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) AuthController {
	return AuthController{auth: auth}
}

// Login godoc
// @Summary  Log in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body dto.LoginInput true "credentials"
// @Success  200 {object} response.Response{data=dto.LoginResponse}
// @Failure  400 {object} response.Response
// @Router   /auth/login [post]
func (a AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	res, err := a.auth.Login(c.Request.Context(), &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, res)
}

// Register godoc
// @Summary  Register a new host or guest
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body dto.RegisterInput true "account"
// @Success  201 {object} response.Response
// @Router   /auth/register [post]
func (a AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid registration data")
		return
	}

	if err := a.auth.Register(c.Request.Context(), &input); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, dto.MessageResponse{Message: "Check your email to verify the account"})
}

func (a AuthController) VerifyEmail(c *gin.Context) {
	if err := a.auth.VerifyEmail(c.Request.Context(), c.Param("code")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Email verified"})
}

func (a AuthController) ResendVerification(c *gin.Context) {
	if err := a.auth.ResendVerification(c.Request.Context(), c.Param("email")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Verification email sent"})
}

func (a AuthController) ForgotPassword(c *gin.Context) {
	var input dto.ForgetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "A valid email is required")
		return
	}

	if err := a.auth.ForgotPassword(c.Request.Context(), input.Email); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Password reset email sent"})
}

func (a AuthController) ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Password and confirmation are required")
		return
	}

	if err := a.auth.ResetPassword(c.Request.Context(), c.Param("token"), &input); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Password changed"})
}

func (a AuthController) Logout(c *gin.Context) {
	if err := a.auth.Logout(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Logged out"})
}

// PasswordStrength grades a candidate password for the registration form
func (a AuthController) PasswordStrength(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	response.Success(c, dto.PasswordStrengthResponse{Strength: validator.PasswordStrength(input.Password)})
}
