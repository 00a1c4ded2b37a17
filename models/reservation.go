package models

import "time"

type Reservation struct {
	ID                    string    `json:"reservation_id_time_created,omitempty"`
	GuestID               string    `json:"guest_id,omitempty"`
	AccommodationID       string    `json:"accommodation_id"`
	AccommodationName     string    `json:"accommodation_name,omitempty"`
	AccommodationLocation string    `json:"accommodation_location,omitempty"`
	HostID                string    `json:"host_id,omitempty"`
	CheckInDate           time.Time `json:"check_in_date"`
	CheckOutDate          time.Time `json:"check_out_date"`
	NumberOfGuests        int       `json:"number_of_guests,omitempty"`
}

// DateRange is the body of the availability and price checks
type DateRange struct {
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
}

// PriceEntry is one element of the price lookup response
type PriceEntry struct {
	Price     float64 `json:"price"`
	PriceType string  `json:"price_type"`
}
