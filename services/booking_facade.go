package services

import (
	"context"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/builders"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/notification"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/session"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"
)

// BookingFacade simplifies the multi step guest flows
type BookingFacade struct {
	reservations   *ReservationService
	accommodations *AccommodationService
	ratings        *RatingService
	feasibility    *FeasibilityChecker
	featured       *FeaturedService
	notifier       notification.Service
	logger         logger.Logger
}

func NewBookingFacade(
	opts ServiceOptions,
	reservations *ReservationService,
	accommodations *AccommodationService,
	ratings *RatingService,
	feasibility *FeasibilityChecker,
	featured *FeaturedService,
	notifier notification.Service,
) *BookingFacade {
	if notifier == nil {
		notifier = notification.Nop{}
	}
	return &BookingFacade{
		reservations:   reservations,
		accommodations: accommodations,
		ratings:        ratings,
		feasibility:    feasibility,
		featured:       featured,
		notifier:       notifier,
		logger:         opts.logger(),
	}
}

// CreateBooking validates the form, checks the dates and creates the reservation
func (f *BookingFacade) CreateBooking(ctx context.Context, req *dto.ReservationRequest) (*models.Reservation, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := validator.ValidateReservation(req); err != nil {
		return nil, err
	}

	stay, err := builders.NormalizeDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	availability, err := f.feasibility.CheckAvailability(ctx, stay, req.AccommodationID)
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		msg := availability.Message
		if msg == "" {
			msg = "Accommodation is not available for the selected dates"
		}
		return nil, errors.NewAppError(errors.ErrCodeNotAvailable, msg, nil)
	}

	b := builders.NewReservationBuilder().ForAccommodation(req.AccommodationID)
	if acc, err := f.accommodations.GetByID(ctx, req.AccommodationID); err != nil {
		f.logger.Error("load accommodation %s: %v", req.AccommodationID, err)
	} else {
		b.WithAccommodation(acc)
	}
	reservation, err := b.
		WithGuest(sess.UserID).
		WithGuests(req.NumberOfGuests).
		WithCheckIn(req.CheckInDate, req.CheckInHour).
		WithCheckOut(req.CheckOutDate).
		Build()
	if err != nil {
		return nil, err
	}

	created, err := f.reservations.Create(ctx, reservation)
	if err != nil {
		return nil, err
	}

	f.notify(notification.NewMessageBuilder(sess.UserID).ReservationCreated(created).Build())
	return created, nil
}

// CancelBooking cancels one of the caller's reservations and re-evaluates
// the host. A failed recompute does not undo the cancellation.
func (f *BookingFacade) CancelBooking(ctx context.Context, reservationID string) error {
	sess, err := session.Require(ctx)
	if err != nil {
		return err
	}

	reservations, err := f.reservations.GetAll(ctx)
	if err != nil {
		return err
	}
	var reservation *models.Reservation
	for i := range reservations {
		if reservations[i].ID == reservationID {
			reservation = &reservations[i]
			break
		}
	}
	if reservation == nil {
		return errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", errors.ErrReservationNotFound)
	}

	hostID := reservation.HostID
	if hostID == "" {
		if hostID, err = f.accommodations.HostID(ctx, reservation.AccommodationID); err != nil {
			f.logger.Error("resolve host of %s: %v", reservation.AccommodationID, err)
		}
	}

	if err := f.reservations.Cancel(ctx, reservationID); err != nil {
		return err
	}

	if hostID != "" {
		if _, err := f.featured.Recompute(ctx, hostID, TriggerCancellation); err != nil {
			f.logger.Error("featured recompute after cancel of %s: %v", reservationID, err)
		}
	}

	f.notify(notification.NewMessageBuilder(sess.UserID).ReservationCancelled(reservation).Build())
	return nil
}

// RateHost submits the rating, then re-evaluates the host
func (f *BookingFacade) RateHost(ctx context.Context, hostID string, rating int) error {
	sess, err := session.Require(ctx)
	if err != nil {
		return err
	}
	if err := f.ratings.RateHost(ctx, hostID, rating); err != nil {
		return err
	}

	if _, err := f.featured.Recompute(ctx, hostID, TriggerRating); err != nil {
		f.logger.Error("featured recompute after rating of %s: %v", hostID, err)
	}

	f.notify(notification.NewMessageBuilder(sess.UserID).HostRated(hostID, rating).Build())
	return nil
}

func (f *BookingFacade) notify(n models.Notification) {
	if err := f.notifier.Send(n); err != nil {
		f.logger.Error("send notification: %v", err)
	}
}
