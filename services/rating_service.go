package services

import (
	"context"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"
)

type RatingService struct {
	api       apiclient.API
	endpoints config.Endpoints
}

func NewRatingService(opts ServiceOptions) *RatingService {
	return &RatingService{api: opts.API, endpoints: opts.Endpoints}
}

func (s *RatingService) GetAll(ctx context.Context) (*models.RatingSummary, error) {
	var summary models.RatingSummary
	if err := s.api.Get(ctx, s.endpoints.Ratings(), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RateHost submits a score. One rating per guest and host is enforced remotely.
func (s *RatingService) RateHost(ctx context.Context, hostID string, rating int) error {
	if err := validator.ValidateRating(rating); err != nil {
		return err
	}
	return s.api.Post(ctx, s.endpoints.RateHost(hostID), dto.RatingRequest{Rating: rating}, nil)
}

func (s *RatingService) RateAccommodation(ctx context.Context, accID string, rating int) error {
	if err := validator.ValidateRating(rating); err != nil {
		return err
	}
	return s.api.Post(ctx, s.endpoints.RateAccommodation(accID), dto.RatingRequest{Rating: rating}, nil)
}

func (s *RatingService) DeleteRating(ctx context.Context, hostID string) error {
	return s.api.Delete(ctx, s.endpoints.DeleteRating(hostID), nil)
}

func (s *RatingService) GetByHostAndGuest(ctx context.Context, hostID string) (*models.Rating, error) {
	var rating models.Rating
	if err := s.api.Get(ctx, s.endpoints.RatingByHostAndGuest(hostID), &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (s *RatingService) HostAverage(ctx context.Context, hostID string) (float64, error) {
	var avg float64
	err := s.api.Get(ctx, s.endpoints.HostAverageRating(hostID), &avg)
	return avg, err
}
