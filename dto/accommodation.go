package dto

import (
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
)

// SearchQuery is the raw query string of GET /accommodations. The browser
// sends "NaN" for an empty price box, which is treated as absent.
type SearchQuery struct {
	Location  string `form:"location"`
	Guests    string `form:"guests"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	TV        string `form:"tv"`
	WiFi      string `form:"wifi"`
	AC        string `form:"ac"`
	MinPrice  string `form:"min_price"`
	MaxPrice  string `form:"max_price"`
	Refine    bool   `form:"refine"`
}

// SearchFilters are the parsed search criteria. Nil means not set.
type SearchFilters struct {
	Location  string     `json:"location,omitempty"`
	Guests    *int       `json:"guests,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	TV        *bool      `json:"tv,omitempty"`
	WiFi      *bool      `json:"wifi,omitempty"`
	AC        *bool      `json:"ac,omitempty"`
	MinPrice  *float64   `json:"minPrice,omitempty"`
	MaxPrice  *float64   `json:"maxPrice,omitempty"`
}

// HasDates reports whether a full date range is set
func (f *SearchFilters) HasDates() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// HasPrices reports whether a full price band is set
func (f *SearchFilters) HasPrices() bool {
	return f.MinPrice != nil && f.MaxPrice != nil
}

type AccommodationRequest struct {
	Name      string          `json:"accommodation_name" binding:"required"`
	Location  string          `json:"accommodation_location" binding:"required"`
	Amenities map[string]bool `json:"accommodation_amenities"`
	MinGuests int             `json:"accommodation_min_guests" validate:"gte=1"`
	MaxGuests int             `json:"accommodation_max_guests" validate:"gtefield=MinGuests"`
	Images    []string        `json:"accommodation_images"`
}

// SearchResponse is the filtered list plus an optional location suggestion
type SearchResponse struct {
	Accommodations []models.Accommodation `json:"accommodations"`
	Total          int                    `json:"total"`
	DidYouMean     string                 `json:"didYouMean,omitempty"`
}

type ImageUploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
