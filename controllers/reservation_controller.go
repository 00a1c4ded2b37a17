package controllers

import (
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/builders"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/response"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	booking      *services.BookingFacade
	reservations *services.ReservationService
	feasibility  *services.FeasibilityChecker
}

func NewReservationController(booking *services.BookingFacade, reservations *services.ReservationService, feasibility *services.FeasibilityChecker) ReservationController {
	return ReservationController{booking: booking, reservations: reservations, feasibility: feasibility}
}

// Create godoc
// @Summary  Book an accommodation
// @Tags     reservations
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body dto.ReservationRequest true "reservation"
// @Success  201 {object} response.Response{data=models.Reservation}
// @Failure  400 {object} response.Response
// @Failure  409 {object} response.Response
// @Router   /reservations [post]
func (r ReservationController) Create(c *gin.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Accommodation and dates are required")
		return
	}

	created, err := r.booking.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, created)
}

func (r ReservationController) GetAll(c *gin.Context) {
	list, err := r.reservations.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, list, len(list))
}

func (r ReservationController) Cancel(c *gin.Context) {
	if err := r.booking.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Reservation cancelled"})
}

// CheckAvailability godoc
// @Summary  Are the dates free
// @Tags     reservations
// @Accept   json
// @Produce  json
// @Param    accId path string true "accommodation id"
// @Param    body  body dto.DateRangeRequest true "stay"
// @Success  200 {object} response.Response{data=dto.AvailabilityResult}
// @Router   /reservations/availability/{accId} [post]
func (r ReservationController) CheckAvailability(c *gin.Context) {
	stay, ok := bindStay(c)
	if !ok {
		return
	}

	res, err := r.feasibility.CheckAvailability(c.Request.Context(), stay, c.Param("accId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, res)
}

func (r ReservationController) Prices(c *gin.Context) {
	stay, ok := bindStay(c)
	if !ok {
		return
	}

	prices, err := r.reservations.Prices(c.Request.Context(), c.Param("accId"), stay)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, prices, len(prices))
}

func bindStay(c *gin.Context) (models.DateRange, bool) {
	var req dto.DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Check-in and check-out dates are required")
		return models.DateRange{}, false
	}
	stay, err := builders.NormalizeDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.FromError(c, err)
		return models.DateRange{}, false
	}
	return stay, true
}
