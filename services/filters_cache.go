package services

import (
	"context"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"

	"github.com/redis/go-redis/v9"
)

// SaveLastFilters remembers the filters of a browser session
func SaveLastFilters(ctx context.Context, rdb redis.Cmdable, key string, filters *dto.SearchFilters) error {
	return SetToRedis(ctx, rdb, constants.CacheKeyLastFilters+key, filters, constants.LastFiltersTTL)
}

// GetLastFilters returns nil without error when nothing is stored
func GetLastFilters(ctx context.Context, rdb redis.Cmdable, key string) (*dto.SearchFilters, error) {
	var filters dto.SearchFilters
	found, err := GetFromRedis(ctx, rdb, constants.CacheKeyLastFilters+key, &filters)
	if err != nil || !found {
		return nil, err
	}
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb redis.Cmdable, key string) error {
	return DeleteFromRedis(ctx, rdb, constants.CacheKeyLastFilters+key)
}

// MergeFilters fills the fields new leaves empty from old
func MergeFilters(old *dto.SearchFilters, new *dto.SearchFilters) *dto.SearchFilters {
	if old == nil {
		return new
	}
	new.Location = orString(new.Location, old.Location)
	new.Guests = orIntPointer(new.Guests, old.Guests)
	new.TV = orBoolPointer(new.TV, old.TV)
	new.WiFi = orBoolPointer(new.WiFi, old.WiFi)
	new.AC = orBoolPointer(new.AC, old.AC)

	// dates travel as a pair
	if new.StartDate == nil && new.EndDate == nil {
		new.StartDate = old.StartDate
		new.EndDate = old.EndDate
	}

	// a new bound that contradicts the stale opposite bound drops it
	if new.MinPrice != nil && old.MaxPrice != nil && *new.MinPrice > *old.MaxPrice {
		new.MaxPrice = nil
	} else {
		new.MaxPrice = orFloatPointer(new.MaxPrice, old.MaxPrice)
	}

	if new.MaxPrice != nil && old.MinPrice != nil && *new.MaxPrice < *old.MinPrice {
		new.MinPrice = nil
	} else {
		new.MinPrice = orFloatPointer(new.MinPrice, old.MinPrice)
	}
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orBoolPointer(newVal, oldVal *bool) *bool {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
