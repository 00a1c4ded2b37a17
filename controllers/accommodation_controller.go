package controllers

import (
	"net/http"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/middleware"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/response"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/session"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

const imageFolder = "accommodations"

type AccommodationController struct {
	accommodations *services.AccommodationService
	search         *services.SearchService
	cld            *cloudinary.Cloudinary
	logger         logger.Logger
}

func NewAccommodationController(accommodations *services.AccommodationService, search *services.SearchService, cld *cloudinary.Cloudinary, log logger.Logger) AccommodationController {
	if log == nil {
		log = logger.Nop()
	}
	return AccommodationController{accommodations: accommodations, search: search, cld: cld, logger: log}
}

// Search godoc
// @Summary  Search accommodations
// @Description Location, guests and amenities are matched remotely; dates and price band are checked per accommodation.
// @Tags     accommodations
// @Produce  json
// @Param    location   query string false "location"
// @Param    guests     query int    false "number of guests"
// @Param    start_date query string false "YYYY-MM-DD"
// @Param    end_date   query string false "YYYY-MM-DD"
// @Param    tv         query bool   false "has TV"
// @Param    wifi       query bool   false "has WiFi"
// @Param    ac         query bool   false "has AC"
// @Param    min_price  query number false "minimum nightly price"
// @Param    max_price  query number false "maximum nightly price"
// @Param    refine     query bool   false "merge with the previous search of this session"
// @Success  200 {object} response.Response{data=dto.SearchResponse}
// @Failure  400 {object} response.Response
// @Router   /accommodations [get]
func (a AccommodationController) Search(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid search parameters")
		return
	}

	res, err := a.search.Search(c.Request.Context(), middleware.SessionID(c), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, res)
}

// ClearSearch forgets the remembered filters of this browser session
func (a AccommodationController) ClearSearch(c *gin.Context) {
	if err := a.search.Forget(c.Request.Context(), middleware.SessionID(c)); err != nil {
		a.logger.Error("clear filters: %v", err)
	}
	response.Success(c, dto.MessageResponse{Message: "Filters cleared"})
}

func (a AccommodationController) GetByID(c *gin.Context) {
	acc, err := a.accommodations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, acc)
}

func (a AccommodationController) GetByHost(c *gin.Context) {
	list, err := a.accommodations.GetByHost(c.Request.Context(), c.Param("hostId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, list, len(list))
}

func (a AccommodationController) Create(c *gin.Context) {
	var req dto.AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name and location are required")
		return
	}
	if err := validator.Struct(&req); err != nil {
		response.FromError(c, err)
		return
	}

	acc, err := a.accommodations.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, acc)
}

func (a AccommodationController) Delete(c *gin.Context) {
	if err := a.accommodations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "Accommodation deleted"})
}

func (a AccommodationController) Recommendations(c *gin.Context) {
	sess, err := session.Require(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	recs, err := a.accommodations.Recommendations(c.Request.Context(), sess.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, recs, len(recs))
}

// UploadImage stores one accommodation photo on Cloudinary
func (a AccommodationController) UploadImage(c *gin.Context) {
	if a.cld == nil {
		response.ServiceUnavailable(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Cannot open file")
		return
	}
	defer src.Close()

	resp, err := a.cld.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{Folder: imageFolder})
	if err != nil {
		a.logger.Error("upload %s: %v", file.Filename, err)
		c.JSON(http.StatusBadGateway, response.Response{Code: 0, Mess: "Upload failed"})
		return
	}

	response.Success(c, dto.ImageUploadResponse{URL: resp.SecureURL, PublicID: resp.PublicID})
}
