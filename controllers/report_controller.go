package controllers

import (
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/response"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) ReportController {
	return ReportController{reports: reports}
}

func (r ReportController) Daily(c *gin.Context) {
	report, err := r.reports.Daily(c.Request.Context(), c.Param("accId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, report)
}

func (r ReportController) Monthly(c *gin.Context) {
	report, err := r.reports.Monthly(c.Request.Context(), c.Param("accId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, report)
}
