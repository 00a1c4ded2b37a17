package validator

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"

	"github.com/go-playground/validator/v10"
)

const dateLayout = constants.DateLayout

// Password strength levels
const (
	StrengthNone     = ""
	StrengthWeak     = "weak"
	StrengthModerate = "moderate"
	StrengthStrong   = "strong"
	StrengthExtra    = "extra"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		s := PasswordStrength(fl.Field().String())
		return s != StrengthNone && s != StrengthWeak
	})
	return v
}

// Struct runs the `validate` tags of s and converts the first failure into an AppError
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid request", err)
	}
	return fieldError(verrs[0])
}

func fieldError(fe validator.FieldError) *errors.AppError {
	field := strings.ToLower(fe.Field())
	switch {
	case fe.Tag() == "password_strength":
		return errors.NewAppError(errors.ErrCodeWeakPassword, "Password is too weak", nil)
	case fe.Tag() == "eqfield":
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Passwords do not match", nil)
	case fe.Tag() == "email":
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	case strings.Contains(field, "guest"):
		return errors.NewAppError(errors.ErrCodeInvalidGuests, "Invalid number of guests", nil)
	case field == "checkinhour":
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Check-in time must be between 1 and 24", nil)
	case strings.Contains(field, "date"):
		return errors.NewAppError(errors.ErrCodeInvalidDates, fmt.Sprintf("Invalid %s", fe.Field()), nil)
	case field == "price":
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Price must be greater than 0", nil)
	case field == "rating":
		return errors.NewAppError(errors.ErrCodeInvalidRating, "Rating must be between 1 and 5", nil)
	case fe.Tag() == "required":
		return errors.NewAppError(errors.ErrCodeRequiredField, fmt.Sprintf("%s is required", fe.Field()), nil)
	}
	return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("Invalid %s", fe.Field()), nil)
}

// PasswordStrength grades a password the way the registration form does.
func PasswordStrength(p string) string {
	if p == "" {
		return StrengthNone
	}
	var upper, lower, digit, special bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("!@#$%^&*()\\[]{}-_+=~`|:;\"'<>,./?", r):
			special = true
		}
	}
	n := len([]rune(p))

	switch {
	case n >= 9 && upper && lower && digit && special:
		return StrengthExtra
	case n >= 7 && lower && digit && (upper || special):
		return StrengthStrong
	case n >= 5 && lower && (upper || digit):
		return StrengthModerate
	}
	return StrengthWeak
}

// ParseDate parses a YYYY-MM-DD date or a full RFC 3339 timestamp
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDates, fmt.Sprintf("Invalid date %q", s), err)
	}
	return t, nil
}

// ValidateDateRange rejects a check-out date before the check-in date.
// Only UTC calendar days are compared.
func ValidateDateRange(checkIn, checkOut time.Time) error {
	checkIn, checkOut = checkIn.UTC(), checkOut.UTC()
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	if out.Before(in) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Check-out date cannot be before check-in date", errors.ErrCheckOutBeforeCheckIn)
	}
	return nil
}

// ValidateReservation checks the booking form before anything is sent
func ValidateReservation(req *dto.ReservationRequest) error {
	if req.NumberOfGuests < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidGuests, "Number of guests must be at least 1", nil)
	}
	if req.CheckInHour < constants.MinCheckInHour || req.CheckInHour > constants.MaxCheckInHour {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Check-in time must be between 1 and 24", nil)
	}
	if err := Struct(req); err != nil {
		return err
	}
	in, err := ParseDate(req.CheckInDate)
	if err != nil {
		return err
	}
	out, err := ParseDate(req.CheckOutDate)
	if err != nil {
		return err
	}
	return ValidateDateRange(in, out)
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.NewAppError(errors.ErrCodeInvalidRating, "Rating must be between 1 and 5", nil)
	}
	return nil
}

// ValidateAvailabilityPeriod applies the create-availability form rules.
// now is passed in so "not before today" is testable.
func ValidateAvailabilityPeriod(req *dto.AvailabilityPeriodRequest, now time.Time) error {
	if req.StartDate == "" || req.EndDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Start and end date are required", nil)
	}
	if req.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Price must be greater than 0", nil)
	}
	if err := Struct(req); err != nil {
		return err
	}
	start, err := ParseDate(req.StartDate)
	if err != nil {
		return err
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "End date cannot be before start date", nil)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Start date cannot be in the past", nil)
	}
	return nil
}

// ParseSearch turns the raw query into filters and applies the search form rules
func ParseSearch(q dto.SearchQuery) (*dto.SearchFilters, error) {
	f, err := ParseSearchQuery(q)
	if err != nil {
		return nil, err
	}
	return f, ValidateSearch(f)
}

// ParseSearchQuery only converts the raw values
func ParseSearchQuery(q dto.SearchQuery) (*dto.SearchFilters, error) {
	f := &dto.SearchFilters{Location: strings.TrimSpace(q.Location)}

	if v := strings.TrimSpace(q.Guests); v != "" && v != "NaN" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, errors.NewAppError(errors.ErrCodeInvalidGuests, "Invalid number of guests", err)
		}
		if n > 0 {
			f.Guests = &n
		}
	}

	f.TV = parseFlag(q.TV)
	f.WiFi = parseFlag(q.WiFi)
	f.AC = parseFlag(q.AC)

	var err error
	if f.StartDate, err = parseOptionalDate(q.StartDate); err != nil {
		return nil, err
	}
	if f.EndDate, err = parseOptionalDate(q.EndDate); err != nil {
		return nil, err
	}
	if f.MinPrice, err = parseOptionalPrice(q.MinPrice); err != nil {
		return nil, err
	}
	if f.MaxPrice, err = parseOptionalPrice(q.MaxPrice); err != nil {
		return nil, err
	}
	return f, nil
}

// ValidateSearch: both prices or neither, min <= max, prices need dates,
// both dates or neither, start <= end.
func ValidateSearch(f *dto.SearchFilters) error {
	if (f.MinPrice == nil) != (f.MaxPrice == nil) {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Enter both minimum and maximum price", nil)
	}
	if f.HasPrices() && *f.MinPrice > *f.MaxPrice {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Minimum price cannot be greater than maximum price", nil)
	}
	if (f.StartDate == nil) != (f.EndDate == nil) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Enter both start and end date", nil)
	}
	if f.HasPrices() && !f.HasDates() {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Price filter requires start and end date", nil)
	}
	if f.HasDates() {
		return ValidateDateRange(*f.StartDate, *f.EndDate)
	}
	return nil
}

func parseFlag(v string) *bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil || !b {
		return nil
	}
	return &b
}

func parseOptionalDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" || v == "undefined" {
		return nil, nil
	}
	t, err := ParseDate(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseOptionalPrice(v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" || v == "NaN" {
		return nil, nil
	}
	p, err := strconv.ParseFloat(v, 64)
	if err != nil || p < 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPrice, fmt.Sprintf("Invalid price %q", v), err)
	}
	return &p, nil
}
