package builders

import (
	"strings"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"
)

// ReservationBuilder assembles a reservation with normalized timestamps
type ReservationBuilder struct {
	reservation *models.Reservation
	err         error
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{},
	}
}

func (b *ReservationBuilder) ForAccommodation(accID string) *ReservationBuilder {
	b.reservation.AccommodationID = accID
	return b
}

// WithAccommodation copies the listing details shown on the reservation
func (b *ReservationBuilder) WithAccommodation(acc *models.Accommodation) *ReservationBuilder {
	b.reservation.AccommodationID = acc.ID
	b.reservation.AccommodationName = acc.Name
	b.reservation.AccommodationLocation = acc.Location
	b.reservation.HostID = acc.HostID
	return b
}

func (b *ReservationBuilder) WithGuest(guestID string) *ReservationBuilder {
	b.reservation.GuestID = guestID
	return b
}

func (b *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	b.reservation.NumberOfGuests = n
	return b
}

// WithCheckIn sets the check-in to date at hour:00 UTC
func (b *ReservationBuilder) WithCheckIn(date string, hour int) *ReservationBuilder {
	d, err := validator.ParseDate(date)
	if err != nil {
		b.fail(err)
		return b
	}
	b.reservation.CheckInDate = CheckInAt(d, hour)
	return b
}

// WithCheckOut sets the check-out, defaulting a bare date to 15:00 UTC
func (b *ReservationBuilder) WithCheckOut(date string) *ReservationBuilder {
	t, err := parseCheckOut(date)
	if err != nil {
		b.fail(err)
		return b
	}
	b.reservation.CheckOutDate = t
	return b
}

func (b *ReservationBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build returns the reservation or the first parse error
func (b *ReservationBuilder) Build() (*models.Reservation, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.reservation, nil
}

// CheckInAt places the check-in on the date's calendar day at hour UTC.
// Hour 24 rolls over to midnight of the next day.
func CheckInAt(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.UTC)
}

// CheckOutAt places the check-out on the date's calendar day at 15:00 UTC
func CheckOutAt(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), constants.DefaultCheckOutHour, 0, 0, 0, time.UTC)
}

// NormalizeDateRange builds the body of an availability or price check.
// The check-in is taken at midnight UTC; a check-out given as a bare
// date is taken at 15:00 UTC, a full timestamp is kept.
func NormalizeDateRange(checkIn, checkOut string) (models.DateRange, error) {
	in, err := validator.ParseDate(checkIn)
	if err != nil {
		return models.DateRange{}, err
	}
	out, err := parseCheckOut(checkOut)
	if err != nil {
		return models.DateRange{}, err
	}
	return models.DateRange{
		CheckInDate:  CheckInAt(in, 0),
		CheckOutDate: out,
	}, nil
}

func parseCheckOut(s string) (time.Time, error) {
	t, err := validator.ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if isBareDate(s) {
		return CheckOutAt(t), nil
	}
	return t.UTC(), nil
}

func isBareDate(s string) bool {
	return !strings.Contains(strings.TrimSpace(s), "T")
}
