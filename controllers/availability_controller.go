package controllers

import (
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/response"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	availability *services.AvailabilityService
}

func NewAvailabilityController(availability *services.AvailabilityService) AvailabilityController {
	return AvailabilityController{availability: availability}
}

// Create godoc
// @Summary  Open, close or price a period of an accommodation
// @Tags     availability
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    accId path string true "accommodation id"
// @Param    body  body dto.AvailabilityPeriodRequest true "period"
// @Success  201 {object} response.Response{data=models.AvailabilityPeriod}
// @Router   /availability/{accId} [post]
func (a AvailabilityController) Create(c *gin.Context) {
	var req dto.AvailabilityPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid availability period")
		return
	}

	period, err := a.availability.CreatePeriod(c.Request.Context(), c.Param("accId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, period)
}

func (a AvailabilityController) Get(c *gin.Context) {
	days, err := a.availability.GetByAccommodation(c.Request.Context(), c.Param("accId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, days, len(days))
}
