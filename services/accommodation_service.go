package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"

	"github.com/redis/go-redis/v9"
)

// ServiceOptions carries the collaborators every remote facade needs.
// Redis is optional; without it nothing is cached.
type ServiceOptions struct {
	API       apiclient.API
	Endpoints config.Endpoints
	Redis     redis.Cmdable
	Logger    logger.Logger
}

func (o ServiceOptions) logger() logger.Logger {
	if o.Logger == nil {
		return logger.Nop()
	}
	return o.Logger
}

type AccommodationService struct {
	api       apiclient.API
	endpoints config.Endpoints
	rdb       redis.Cmdable
	logger    logger.Logger
}

func NewAccommodationService(opts ServiceOptions) *AccommodationService {
	return &AccommodationService{
		api:       opts.API,
		endpoints: opts.Endpoints,
		rdb:       opts.Redis,
		logger:    opts.logger(),
	}
}

// GetAll returns the unfiltered list, served from cache when warm
func (s *AccommodationService) GetAll(ctx context.Context) ([]models.Accommodation, error) {
	var accommodations []models.Accommodation
	if s.rdb != nil {
		found, err := GetFromRedis(ctx, s.rdb, constants.CacheKeyAccommodations, &accommodations)
		if err != nil {
			s.logger.Error("read accommodations cache: %v", err)
		} else if found {
			return accommodations, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh fetches the unfiltered list and rewrites the cache
func (s *AccommodationService) Refresh(ctx context.Context) ([]models.Accommodation, error) {
	var accommodations []models.Accommodation
	if err := s.api.Get(ctx, s.endpoints.Accommodations(), &accommodations); err != nil {
		return nil, err
	}
	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, constants.CacheKeyAccommodations, accommodations, constants.AccommodationsTTL); err != nil {
			s.logger.Error("write accommodations cache: %v", err)
		}
	}
	return accommodations, nil
}

func (s *AccommodationService) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, constants.CacheKeyAccommodations); err != nil {
		s.logger.Error("invalidate accommodations cache: %v", err)
	}
}

func (s *AccommodationService) GetByID(ctx context.Context, id string) (*models.Accommodation, error) {
	var acc models.Accommodation
	if err := s.api.Get(ctx, s.endpoints.Accommodation(id), &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *AccommodationService) GetByHost(ctx context.Context, hostID string) ([]models.Accommodation, error) {
	var accommodations []models.Accommodation
	if err := s.api.Get(ctx, s.endpoints.AccommodationsByHost(hostID), &accommodations); err != nil {
		return nil, err
	}
	return accommodations, nil
}

// HostID asks the accommodations service who owns accID
func (s *AccommodationService) HostID(ctx context.Context, accID string) (string, error) {
	var res struct {
		HostID string `json:"hostId"`
	}
	if err := s.api.Get(ctx, s.endpoints.HostIDByAccommodation(accID), &res); err != nil {
		return "", err
	}
	return res.HostID, nil
}

// Search forwards every criterion to the accommodation service. Dates and
// prices are re-checked per accommodation by the feasibility check.
func (s *AccommodationService) Search(ctx context.Context, f *dto.SearchFilters) ([]models.Accommodation, error) {
	query := SearchQueryValues(f)
	if len(query) == 0 {
		return s.GetAll(ctx)
	}
	var accommodations []models.Accommodation
	if err := s.api.Get(ctx, s.endpoints.SearchAccommodations(query), &accommodations); err != nil {
		return nil, err
	}
	return accommodations, nil
}

// SearchQueryValues encodes f as the query of GET /accommodations/get
func SearchQueryValues(f *dto.SearchFilters) url.Values {
	query := url.Values{}
	if f == nil {
		return query
	}
	if f.Location != "" {
		query.Set("location", f.Location)
	}
	if f.Guests != nil {
		query.Set("guests", strconv.Itoa(*f.Guests))
	}
	if f.TV != nil || f.WiFi != nil || f.AC != nil {
		query.Set("tv", strconv.FormatBool(f.TV != nil && *f.TV))
		query.Set("wifi", strconv.FormatBool(f.WiFi != nil && *f.WiFi))
		query.Set("ac", strconv.FormatBool(f.AC != nil && *f.AC))
	}
	if f.HasDates() {
		query.Set("start_date", f.StartDate.Format(constants.DateLayout))
		query.Set("end_date", f.EndDate.Format(constants.DateLayout))
	}
	if f.HasPrices() {
		query.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
		query.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	return query
}

func (s *AccommodationService) Create(ctx context.Context, req *dto.AccommodationRequest) (*models.Accommodation, error) {
	var created models.Accommodation
	if err := s.api.Post(ctx, s.endpoints.CreateAccommodation(), req, &created); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &created, nil
}

func (s *AccommodationService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, s.endpoints.DeleteAccommodation(id), nil); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AccommodationService) Recommendations(ctx context.Context, guestID string) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := s.api.Get(ctx, s.endpoints.Recommendations(guestID), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
