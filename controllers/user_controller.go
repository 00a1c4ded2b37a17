package controllers

import (
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/response"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) UserController {
	return UserController{users: users}
}

// Me godoc
// @Summary  Current user
// @Tags     users
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Response{data=models.User}
// @Router   /users/me [get]
func (u UserController) Me(c *gin.Context) {
	user, err := u.users.GetMyInfo(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

func (u UserController) GetProfile(c *gin.Context) {
	user, err := u.users.GetProfile(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

func (u UserController) UpdateProfile(c *gin.Context) {
	var update dto.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		response.BadRequest(c, "Invalid profile data")
		return
	}

	user, err := u.users.UpdateProfile(c.Request.Context(), &update)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

func (u UserController) ChangePassword(c *gin.Context) {
	var input dto.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := u.users.ChangePassword(c.Request.Context(), &input); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Password changed"})
}

func (u UserController) DeleteProfile(c *gin.Context) {
	if err := u.users.DeleteProfile(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Profile deleted"})
}

// Notifications lists the stored notifications of the logged in host
func (u UserController) Notifications(c *gin.Context) {
	list, err := u.users.Notifications(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, list, len(list))
}
