package response

import (
	"errors"
	"net/http"

	apperrors "github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every gateway reply
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

type ResponseTotal struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total int         `json:"total"`
}

// Success writes a 200 reply
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Success",
		Total: total,
		Data:  data,
	})
}

// Created writes a 201 reply
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// Error writes a 400 reply with a custom code
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Server error",
	})
}

// ServiceUnavailable is the banner for a backend that could not be reached
func ServiceUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, Response{
		Code: 0,
		Mess: apperrors.ServiceUnavailableMessage,
	})
}

func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Unauthenticated",
	})
}

func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Access denied",
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Remote relays a rejection from a backend service with its own status
func Remote(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError maps err onto the notification taxonomy: validation failures
// and remote rejections carry their message, unreachable backends get the
// service unavailable banner.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMissingSession):
		Unauthorized(c)
	case apperrors.IsValidation(err):
		BadRequest(c, apperrors.UserMessage(err))
	case apperrors.IsUnavailable(err):
		ServiceUnavailable(c)
	case apperrors.GetRemoteError(err) != nil:
		remoteErr := apperrors.GetRemoteError(err)
		status := remoteErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		if status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		Remote(c, status, apperrors.UserMessage(err))
	case apperrors.IsAppError(err):
		appErr := apperrors.GetAppError(err)
		switch appErr.Code {
		case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken, apperrors.ErrCodeMissingToken:
			Unauthorized(c)
		case apperrors.ErrCodeNotFound:
			NotFound(c)
		case apperrors.ErrCodeNotAvailable:
			c.JSON(http.StatusConflict, Response{Code: 0, Mess: appErr.Message})
		default:
			ServerError(c)
		}
	default:
		ServerError(c)
	}
}
