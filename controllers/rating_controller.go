package controllers

import (
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/response"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	ratings *services.RatingService
	booking *services.BookingFacade
}

func NewRatingController(ratings *services.RatingService, booking *services.BookingFacade) RatingController {
	return RatingController{ratings: ratings, booking: booking}
}

func (r RatingController) GetAll(c *gin.Context) {
	summary, err := r.ratings.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, summary)
}

// RateHost godoc
// @Summary  Rate a host
// @Description The host's featured status is re-evaluated afterwards.
// @Tags     ratings
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    hostId path string true "host id"
// @Param    body   body dto.RatingRequest true "1 to 5 stars"
// @Success  200 {object} response.Response
// @Router   /ratings/host/{hostId} [post]
func (r RatingController) RateHost(c *gin.Context) {
	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Rating is required")
		return
	}

	if err := r.booking.RateHost(c.Request.Context(), c.Param("hostId"), req.Rating); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Host rated"})
}

func (r RatingController) RateAccommodation(c *gin.Context) {
	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Rating is required")
		return
	}

	if err := r.ratings.RateAccommodation(c.Request.Context(), c.Param("accId"), req.Rating); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Accommodation rated"})
}

func (r RatingController) DeleteHostRating(c *gin.Context) {
	if err := r.ratings.DeleteRating(c.Request.Context(), c.Param("hostId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Rating deleted"})
}

// GetHostRating returns the caller's own rating of a host
func (r RatingController) GetHostRating(c *gin.Context) {
	rating, err := r.ratings.GetByHostAndGuest(c.Request.Context(), c.Param("hostId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rating)
}
