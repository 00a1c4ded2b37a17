package services

import (
	"context"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"
)

type ReservationService struct {
	api       apiclient.API
	endpoints config.Endpoints
}

func NewReservationService(opts ServiceOptions) *ReservationService {
	return &ReservationService{api: opts.API, endpoints: opts.Endpoints}
}

func (s *ReservationService) Create(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	var created models.Reservation
	if err := s.api.Post(ctx, s.endpoints.CreateReservation(), r, &created); err != nil {
		return nil, err
	}
	if created.AccommodationID == "" {
		created = *r
	}
	return &created, nil
}

// GetAll lists the reservations of the caller
func (s *ReservationService) GetAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.api.Get(ctx, s.endpoints.Reservations(), &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id string) error {
	return s.api.Delete(ctx, s.endpoints.CancelReservation(id), nil)
}

// CheckAvailability succeeds when the dates are free
func (s *ReservationService) CheckAvailability(ctx context.Context, accID string, body models.DateRange) error {
	return s.api.Post(ctx, s.endpoints.CheckAvailability(accID), body, nil)
}

func (s *ReservationService) Prices(ctx context.Context, accID string, body models.DateRange) ([]models.PriceEntry, error) {
	var prices []models.PriceEntry
	if err := s.api.Post(ctx, s.endpoints.Prices(accID), body, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// host statistics used by the featured recompute

func (s *ReservationService) HostCancelRate(ctx context.Context, hostID string) (float64, error) {
	var v float64
	err := s.api.Get(ctx, s.endpoints.HostCancelRate(hostID), &v)
	return v, err
}

// HostTotal and HostDuration are decoded as JSON numbers; the reservations
// service may answer with fractions.
func (s *ReservationService) HostTotal(ctx context.Context, hostID string) (float64, error) {
	var v float64
	err := s.api.Get(ctx, s.endpoints.HostTotal(hostID), &v)
	return v, err
}

func (s *ReservationService) HostDuration(ctx context.Context, hostID string) (float64, error) {
	var v float64
	err := s.api.Get(ctx, s.endpoints.HostDuration(hostID), &v)
	return v, err
}
