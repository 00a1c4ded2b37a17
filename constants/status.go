package constants

import "time"

// User roles
const (
	RoleHost  = "Host"
	RoleGuest = "Guest"
)

// Availability types
const (
	AvailabilityAvailable   = "Available"
	AvailabilityUnavailable = "Unavailable"
	AvailabilityBooked      = "Booked"
)

// Price types
const (
	PriceTypePerGuest         = "Per_Guest"
	PriceTypePerAccommodation = "Per_Accommodation"
)

// Featured host thresholds
const (
	FeaturedMinAvgRating  = 4.5
	FeaturedMaxCancelRate = 5.0
	FeaturedMinTotal      = 5
	FeaturedMinDuration   = 50
)

// Reservation timestamps
const (
	DateLayout          = "2006-01-02"
	DefaultCheckOutHour = 15
	MinCheckInHour      = 1
	MaxCheckInHour      = 24
)

// Cache keys and TTLs
const (
	CacheKeyAccommodations = "accommodations:all"
	CacheKeyLastFilters    = "last_filters:"
	CacheKeySessionMe      = "session:me:"

	AccommodationsTTL = 5 * time.Minute
	LastFiltersTTL    = 30 * time.Minute
	SessionMeTTL      = 15 * time.Minute
)

const DefaultFeasibilityConcurrency = 8
