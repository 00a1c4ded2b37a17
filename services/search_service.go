package services

import (
	"context"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"

	"github.com/redis/go-redis/v9"
)

// SearchService runs an accommodation search end to end: remote criteria
// first, then dates and prices through the feasibility checker.
type SearchService struct {
	accommodations *AccommodationService
	feasibility    *FeasibilityChecker
	rdb            redis.Cmdable
	logger         logger.Logger
}

func NewSearchService(opts ServiceOptions, accommodations *AccommodationService, feasibility *FeasibilityChecker) *SearchService {
	return &SearchService{
		accommodations: accommodations,
		feasibility:    feasibility,
		rdb:            opts.Redis,
		logger:         opts.logger(),
	}
}

// Search answers GET /accommodations. With q.Refine the filters of the
// previous search of the same browser session fill in what q leaves out.
func (s *SearchService) Search(ctx context.Context, sessionKey string, q dto.SearchQuery) (*dto.SearchResponse, error) {
	filters, err := validator.ParseSearchQuery(q)
	if err != nil {
		return nil, err
	}

	if q.Refine && s.rdb != nil && sessionKey != "" {
		last, err := GetLastFilters(ctx, s.rdb, sessionKey)
		if err != nil {
			s.logger.Error("load last filters for %s: %v", sessionKey, err)
		}
		filters = MergeFilters(last, filters)
	}

	if err := validator.ValidateSearch(filters); err != nil {
		return nil, err
	}

	if s.rdb != nil && sessionKey != "" {
		if err := SaveLastFilters(ctx, s.rdb, sessionKey, filters); err != nil {
			s.logger.Error("save last filters for %s: %v", sessionKey, err)
		}
	}

	found, err := s.accommodations.Search(ctx, filters)
	if err != nil {
		return nil, err
	}

	feasible, err := s.feasibility.FilterAccommodations(ctx, found, filters)
	if err != nil {
		return nil, err
	}
	if feasible == nil {
		feasible = []models.Accommodation{}
	}

	res := &dto.SearchResponse{Accommodations: feasible, Total: len(feasible)}
	if len(feasible) == 0 && filters.Location != "" {
		res.DidYouMean = s.suggest(ctx, filters.Location)
	}
	return res, nil
}

// Forget drops the remembered filters of a browser session
func (s *SearchService) Forget(ctx context.Context, sessionKey string) error {
	if s.rdb == nil || sessionKey == "" {
		return nil
	}
	return ClearLastFilters(ctx, s.rdb, sessionKey)
}

func (s *SearchService) suggest(ctx context.Context, location string) string {
	all, err := s.accommodations.GetAll(ctx)
	if err != nil {
		s.logger.Error("load accommodations for suggestion: %v", err)
		return ""
	}
	return SuggestLocation(location, all)
}
