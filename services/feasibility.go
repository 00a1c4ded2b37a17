package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/builders"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"

	"golang.org/x/sync/errgroup"
)

// AvailabilityAPI is the part of the reservations service the checker calls
type AvailabilityAPI interface {
	CheckAvailability(ctx context.Context, accID string, body models.DateRange) error
	Prices(ctx context.Context, accID string, body models.DateRange) ([]models.PriceEntry, error)
}

// FeasibilityChecker decides which accommodations can host a stay
type FeasibilityChecker struct {
	reservations AvailabilityAPI
	logger       logger.Logger
	concurrency  int
}

func NewFeasibilityChecker(reservations AvailabilityAPI, log logger.Logger, concurrency int) *FeasibilityChecker {
	if concurrency <= 0 {
		concurrency = constants.DefaultFeasibilityConcurrency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &FeasibilityChecker{
		reservations: reservations,
		logger:       log,
		concurrency:  concurrency,
	}
}

// StayRange normalizes a searched stay: check-in at midnight UTC of the
// first day, check-out at 15:00 UTC of the last.
func StayRange(start, end time.Time) models.DateRange {
	return models.DateRange{
		CheckInDate:  builders.CheckInAt(start, 0),
		CheckOutDate: builders.CheckOutAt(end),
	}
}

// CheckAvailability asks whether the stay is free. A 4xx answer is a
// normal "not available" result carrying the server message; only
// transport and server failures are returned as errors.
func (c *FeasibilityChecker) CheckAvailability(ctx context.Context, r models.DateRange, accID string) (dto.AvailabilityResult, error) {
	if err := validator.ValidateDateRange(r.CheckInDate, r.CheckOutDate); err != nil {
		return dto.AvailabilityResult{}, err
	}

	err := c.reservations.CheckAvailability(ctx, accID, r)
	if err == nil {
		return dto.AvailabilityResult{Available: true}, nil
	}
	if remoteErr := errors.GetRemoteError(err); remoteErr != nil && remoteErr.IsClientError() {
		return dto.AvailabilityResult{Available: false, Message: remoteErr.Message}, nil
	}
	return dto.AvailabilityResult{}, err
}

// CheckPrice reports whether every nightly price of the stay lies in [minPrice, maxPrice]
func (c *FeasibilityChecker) CheckPrice(ctx context.Context, r models.DateRange, accID string, minPrice, maxPrice float64) (bool, error) {
	if err := validator.ValidateDateRange(r.CheckInDate, r.CheckOutDate); err != nil {
		return false, err
	}
	prices, err := c.reservations.Prices(ctx, accID, r)
	if err != nil {
		return false, err
	}
	return PriceBandContains(prices, minPrice, maxPrice), nil
}

// PriceBandContains is true iff minPrice <= min(prices) and maxPrice >= max(prices).
// An empty list never fits.
func PriceBandContains(prices []models.PriceEntry, minPrice, maxPrice float64) bool {
	if len(prices) == 0 {
		return false
	}
	lo, hi := prices[0].Price, prices[0].Price
	for _, p := range prices[1:] {
		if p.Price < lo {
			lo = p.Price
		}
		if p.Price > hi {
			hi = p.Price
		}
	}
	return minPrice <= lo && maxPrice >= hi
}

// FilterAccommodations keeps the feasible accommodations in their original order
func (c *FeasibilityChecker) FilterAccommodations(ctx context.Context, accommodations []models.Accommodation, f *dto.SearchFilters) ([]models.Accommodation, error) {
	candidates, err := c.Evaluate(ctx, accommodations, f)
	if err != nil {
		return nil, err
	}
	result := make([]models.Accommodation, 0, len(candidates))
	for _, cand := range candidates {
		if cand.Status == models.FeasibilityFeasible {
			result = append(result, cand.Accommodation)
		}
	}
	return result, nil
}

// Evaluate runs every accommodation through the checks with bounded
// concurrency. Without a date range all of them are feasible as is.
func (c *FeasibilityChecker) Evaluate(ctx context.Context, accommodations []models.Accommodation, f *dto.SearchFilters) ([]models.Candidate, error) {
	candidates := make([]models.Candidate, len(accommodations))
	for i, acc := range accommodations {
		candidates[i] = models.Candidate{Index: i, Accommodation: acc, Status: models.FeasibilityPending}
	}

	if f == nil || !f.HasDates() {
		for i := range candidates {
			c.transition(&candidates[i], func(s models.FeasibilityState, cand *models.Candidate) error { return s.Accept(cand) })
		}
		return candidates, nil
	}

	r := StayRange(*f.StartDate, *f.EndDate)
	if err := validator.ValidateDateRange(r.CheckInDate, r.CheckOutDate); err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i := range candidates {
		cand := &candidates[i]
		g.Go(func() error {
			c.evaluate(ctx, cand, r, f)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (c *FeasibilityChecker) evaluate(ctx context.Context, cand *models.Candidate, r models.DateRange, f *dto.SearchFilters) {
	accID := cand.Accommodation.ID

	res, err := c.CheckAvailability(ctx, r, accID)
	if err != nil {
		c.logger.Error("availability check for %s failed: %v", accID, err)
		c.reject(cand, fmt.Sprintf("availability check failed: %v", err))
		return
	}
	if !res.Available {
		c.logger.Info("accommodation %s excluded: %s", accID, res.Message)
		c.reject(cand, res.Message)
		return
	}
	c.transition(cand, func(s models.FeasibilityState, cand *models.Candidate) error { return s.DatesAvailable(cand) })

	if !f.HasPrices() {
		c.transition(cand, func(s models.FeasibilityState, cand *models.Candidate) error { return s.Accept(cand) })
		return
	}

	ok, err := c.CheckPrice(ctx, r, accID, *f.MinPrice, *f.MaxPrice)
	if err != nil {
		c.logger.Error("price check for %s failed: %v", accID, err)
		c.reject(cand, fmt.Sprintf("price check failed: %v", err))
		return
	}
	if !ok {
		c.logger.Info("accommodation %s excluded: price out of range", accID)
		c.reject(cand, "price out of range")
		return
	}
	c.transition(cand, func(s models.FeasibilityState, cand *models.Candidate) error { return s.Accept(cand) })
}

func (c *FeasibilityChecker) reject(cand *models.Candidate, reason string) {
	c.transition(cand, func(s models.FeasibilityState, cand *models.Candidate) error { return s.Reject(cand, reason) })
}

func (c *FeasibilityChecker) transition(cand *models.Candidate, step func(models.FeasibilityState, *models.Candidate) error) {
	if err := step(models.GetFeasibilityState(cand.Status), cand); err != nil {
		c.logger.Error("feasibility of %s: %v", cand.Accommodation.ID, err)
	}
}
