package models

import "time"

type AvailabilityPeriod struct {
	AccommodationID  string    `json:"accommodation_id,omitempty"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Price            float64   `json:"price"`
	PriceType        string    `json:"price_type"`
	AvailabilityType string    `json:"availability_type"`
}

// AvailabilityDay is a single dated slot as returned by the reservations service
type AvailabilityDay struct {
	ID               string    `json:"_id,omitempty"`
	AccommodationID  string    `json:"accommodation_id"`
	Date             time.Time `json:"date"`
	Price            float64   `json:"price"`
	AvailabilityType string    `json:"availability_type"`
}
