package models

import "strings"

// Amenity keys understood by the accommodations service
const (
	AmenityTV   = "TV"
	AmenityWiFi = "WiFi"
	AmenityAC   = "AC"
)

type Accommodation struct {
	ID        string          `json:"_id"`
	HostID    string          `json:"host_id"`
	Name      string          `json:"accommodation_name"`
	Location  string          `json:"accommodation_location"`
	Amenities map[string]bool `json:"accommodation_amenities"`
	MinGuests int             `json:"accommodation_min_guests"`
	MaxGuests int             `json:"accommodation_max_guests"`
	Images    []string        `json:"accommodation_images,omitempty"`
	Active    bool            `json:"accommodation_active"`
}

// HasAmenity matches the key case-insensitively
func (a *Accommodation) HasAmenity(name string) bool {
	for k, v := range a.Amenities {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return false
}

// FitsGuests reports whether n guests are within the accommodation's bounds.
// A zero max means the host left it open.
func (a *Accommodation) FitsGuests(n int) bool {
	if n < a.MinGuests {
		return false
	}
	return a.MaxGuests == 0 || n <= a.MaxGuests
}

type Recommendation struct {
	ID        string `json:"accommodation_id"`
	Name      string `json:"accommodation_name"`
	Location  string `json:"accommodation_location"`
	MinGuests int    `json:"accommodation_min_guests"`
	MaxGuests int    `json:"accommodation_max_guests"`
}
