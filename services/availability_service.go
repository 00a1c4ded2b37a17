package services

import (
	"context"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"
)

type AvailabilityService struct {
	api       apiclient.API
	endpoints config.Endpoints
	now       func() time.Time
}

func NewAvailabilityService(opts ServiceOptions) *AvailabilityService {
	return &AvailabilityService{
		api:       opts.API,
		endpoints: opts.Endpoints,
		now:       time.Now,
	}
}

// CreatePeriod validates the period form and sends it to the reservations service
func (s *AvailabilityService) CreatePeriod(ctx context.Context, accID string, req *dto.AvailabilityPeriodRequest) (*models.AvailabilityPeriod, error) {
	if err := validator.ValidateAvailabilityPeriod(req, s.now().UTC()); err != nil {
		return nil, err
	}
	start, _ := validator.ParseDate(req.StartDate)
	end, _ := validator.ParseDate(req.EndDate)

	period := &models.AvailabilityPeriod{
		AccommodationID:  accID,
		StartDate:        start,
		EndDate:          end,
		Price:            req.Price,
		PriceType:        req.PriceType,
		AvailabilityType: req.AvailabilityType,
	}
	var created models.AvailabilityPeriod
	if err := s.api.Post(ctx, s.endpoints.CreateAvailability(accID), period, &created); err != nil {
		return nil, err
	}
	if created.StartDate.IsZero() {
		return period, nil
	}
	return &created, nil
}

func (s *AvailabilityService) GetByAccommodation(ctx context.Context, accID string) ([]models.AvailabilityDay, error) {
	var days []models.AvailabilityDay
	if err := s.api.Get(ctx, s.endpoints.Availability(accID), &days); err != nil {
		return nil, err
	}
	return days, nil
}
