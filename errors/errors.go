package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable, machine readable error code.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeWeakPassword    ErrorCode = "WEAK_PASSWORD"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDates  ErrorCode = "INVALID_DATES"
	ErrCodeInvalidGuests ErrorCode = "INVALID_GUESTS"
	ErrCodeInvalidPrice  ErrorCode = "INVALID_PRICE"
	ErrCodeInvalidRating ErrorCode = "INVALID_RATING"

	// Remote errors
	ErrCodeRemote             ErrorCode = "REMOTE_ERROR"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeNotAvailable       ErrorCode = "NOT_AVAILABLE"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"

	// Storage errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeCacheError ErrorCode = "CACHE_ERROR"
)

// ServiceUnavailableMessage is shown when no response reached the gateway.
const ServiceUnavailableMessage = "Service is currently unavailable, please try again later"

// AppError is an error raised by the gateway itself.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err wraps an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the AppError wrapped by err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsValidation reports whether err was raised by client-side validation.
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat, ErrCodeInvalidDates,
		ErrCodeInvalidGuests, ErrCodeInvalidPrice, ErrCodeInvalidRating, ErrCodeWeakPassword,
		ErrCodeInvalidEmail, ErrCodeInvalidPassword:
		return true
	}
	return false
}

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrMissingSession        = errors.New("missing session")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrEmptyPriceList        = errors.New("no prices for requested dates")
	ErrCheckOutBeforeCheckIn = errors.New("check-out date is before check-in date")
)
