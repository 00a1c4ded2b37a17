package dto

// ReservationRequest is what the booking form posts. Dates are plain
// YYYY-MM-DD strings; the check-in hour is given separately.
type ReservationRequest struct {
	AccommodationID string `json:"accommodation_id" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	CheckInHour     int    `json:"check_in_time" validate:"gte=1,lte=24"`
	NumberOfGuests  int    `json:"number_of_guests" validate:"gte=1"`
}

// DateRangeRequest is the body of the availability and price checks
type DateRangeRequest struct {
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}
