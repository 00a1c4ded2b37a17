package controllers

import (
	"strconv"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/response"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"

	"github.com/gin-gonic/gin"
)

type FeaturedController struct {
	featured *services.FeaturedService
}

func NewFeaturedController(featured *services.FeaturedService) FeaturedController {
	return FeaturedController{featured: featured}
}

// Recompute godoc
// @Summary  Re-evaluate the featured status of a host
// @Tags     hosts
// @Produce  json
// @Security BearerAuth
// @Param    hostId path string true "host id"
// @Success  200 {object} response.Response{data=models.FeaturedAudit}
// @Failure  503 {object} response.Response
// @Router   /hosts/{hostId}/featured/recompute [post]
func (f FeaturedController) Recompute(c *gin.Context) {
	audit, err := f.featured.Recompute(c.Request.Context(), c.Param("hostId"), services.TriggerManual)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, audit)
}

// History lists the latest evaluations, newest first
func (f FeaturedController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	audits, err := f.featured.History(c.Request.Context(), c.Param("hostId"), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, audits, len(audits))
}
