package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	api      *fakeAPI
	notifier *recordingNotifier
	audit    *memoryAuditStore
	facade   *BookingFacade
}

func newBookingFixture(api *fakeAPI) *bookingFixture {
	opts := ServiceOptions{API: api, Endpoints: testEndpoints()}
	reservations := NewReservationService(opts)
	ratings := NewRatingService(opts)
	notifier := &recordingNotifier{}
	audit := &memoryAuditStore{}
	featured := NewFeaturedService(opts, reservations, ratings, audit, notifier)
	facade := NewBookingFacade(opts,
		reservations,
		NewAccommodationService(opts),
		ratings,
		NewFeasibilityChecker(reservations, nil, 2),
		featured,
		notifier,
	)
	return &bookingFixture{api: api, notifier: notifier, audit: audit, facade: facade}
}

func guestContext() context.Context {
	return session.WithSession(context.Background(), &session.Session{Token: "tok", UserID: "g1", Role: "Guest"})
}

func bookingRequest() *dto.ReservationRequest {
	return &dto.ReservationRequest{
		AccommodationID: "acc1",
		CheckInDate:     "2024-06-01",
		CheckOutDate:    "2024-06-05",
		CheckInHour:     14,
		NumberOfGuests:  2,
	}
}

func TestCreateBooking_RejectsZeroGuestsBeforeCalling(t *testing.T) {
	f := newBookingFixture(newFakeAPI())
	req := bookingRequest()
	req.NumberOfGuests = 0

	_, err := f.facade.CreateBooking(guestContext(), req)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidGuests, appErr.Code)
	assert.Empty(t, f.api.calls)
}

func TestCreateBooking_RequiresSession(t *testing.T) {
	f := newBookingFixture(newFakeAPI())

	_, err := f.facade.CreateBooking(context.Background(), bookingRequest())

	assert.ErrorIs(t, err, errors.ErrMissingSession)
}

func TestCreateBooking_NotAvailable(t *testing.T) {
	e := testEndpoints()
	api := newFakeAPI().fail(http.MethodPost, e.CheckAvailability("acc1"), clientErr("Accommodation is already booked"))
	f := newBookingFixture(api)

	_, err := f.facade.CreateBooking(guestContext(), bookingRequest())

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeNotAvailable, appErr.Code)
	assert.Equal(t, "Accommodation is already booked", appErr.Message)
	assert.Equal(t, 0, api.called(http.MethodPost, e.CreateReservation()))
}

func TestCreateBooking_Success(t *testing.T) {
	e := testEndpoints()
	api := newFakeAPI().on(http.MethodGet, e.Accommodation("acc1"), models.Accommodation{
		ID: "acc1", Name: "Sea View", Location: "Budva", HostID: "h1",
	})
	f := newBookingFixture(api)

	created, err := f.facade.CreateBooking(guestContext(), bookingRequest())

	require.NoError(t, err)
	assert.Equal(t, "g1", created.GuestID)
	assert.Equal(t, "h1", created.HostID)
	assert.Equal(t, "Sea View", created.AccommodationName)
	assert.Equal(t, time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC), created.CheckInDate)
	assert.Equal(t, time.Date(2024, 6, 5, 15, 0, 0, 0, time.UTC), created.CheckOutDate)
	assert.Equal(t, 1, api.called(http.MethodPost, e.CheckAvailability("acc1")))
	assert.Equal(t, 1, api.called(http.MethodPost, e.CreateReservation()))
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "Reservation created", f.notifier.sent[0].Message)
}

func TestCancelBooking_UnknownReservation(t *testing.T) {
	e := testEndpoints()
	api := newFakeAPI().on(http.MethodGet, e.Reservations(), []models.Reservation{{ID: "r1", AccommodationID: "acc1"}})
	f := newBookingFixture(api)

	err := f.facade.CancelBooking(guestContext(), "r9")

	assert.ErrorIs(t, err, errors.ErrReservationNotFound)
	assert.Equal(t, 0, api.methodCalls(http.MethodDelete))
}

func TestCancelBooking_ResolvesHostAndRecomputes(t *testing.T) {
	e := testEndpoints()
	api := newFakeAPI().
		on(http.MethodGet, e.Reservations(), []models.Reservation{{ID: "r1", AccommodationID: "acc1"}}).
		on(http.MethodGet, e.HostIDByAccommodation("acc1"), map[string]string{"hostId": "h1"}).
		on(http.MethodGet, e.HostCancelRate("h1"), 6.0).
		on(http.MethodGet, e.HostTotal("h1"), 10).
		on(http.MethodGet, e.HostDuration("h1"), 100).
		on(http.MethodGet, e.HostAverageRating("h1"), 4.8).
		on(http.MethodGet, e.Featured("h1"), true)
	f := newBookingFixture(api)

	err := f.facade.CancelBooking(guestContext(), "r1")

	require.NoError(t, err)
	assert.Equal(t, 1, api.called(http.MethodDelete, e.CancelReservation("r1")))
	assert.Equal(t, 1, api.called(http.MethodPost, e.UnsetFeatured("h1")))
	require.Len(t, f.audit.audits, 1)
	assert.Equal(t, TriggerCancellation, f.audit.audits[0].Trigger)
}

func TestCancelBooking_RecomputeFailureIsLogged(t *testing.T) {
	e := testEndpoints()
	api := newFakeAPI().
		on(http.MethodGet, e.Reservations(), []models.Reservation{{ID: "r1", AccommodationID: "acc1", HostID: "h1"}}).
		fail(http.MethodGet, e.HostCancelRate("h1"), serverErr())
	f := newBookingFixture(api)

	err := f.facade.CancelBooking(guestContext(), "r1")

	require.NoError(t, err)
	assert.Equal(t, 1, api.called(http.MethodDelete, e.CancelReservation("r1")))
	assert.Equal(t, 0, api.methodCalls(http.MethodPost))
	assert.Equal(t, 0, api.called(http.MethodGet, e.HostIDByAccommodation("acc1")))
}

func TestRateHost_InvalidRatingCallsNothing(t *testing.T) {
	f := newBookingFixture(newFakeAPI())

	err := f.facade.RateHost(guestContext(), "h1", 6)

	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, f.api.calls)
}

func TestRateHost_Recomputes(t *testing.T) {
	e := testEndpoints()
	api := newFakeAPI().
		on(http.MethodGet, e.HostCancelRate("h1"), 1.0).
		on(http.MethodGet, e.HostTotal("h1"), 7).
		on(http.MethodGet, e.HostDuration("h1"), 70).
		on(http.MethodGet, e.HostAverageRating("h1"), 4.7).
		on(http.MethodGet, e.Featured("h1"), false)
	f := newBookingFixture(api)

	err := f.facade.RateHost(guestContext(), "h1", 5)

	require.NoError(t, err)
	assert.Equal(t, 1, api.called(http.MethodPost, e.RateHost("h1")))
	assert.Equal(t, 1, api.called(http.MethodPost, e.SetFeatured("h1")))
}
