package dto

type AvailabilityPeriodRequest struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	PriceType        string  `json:"price_type" validate:"required,oneof=Per_Guest Per_Accommodation"`
	AvailabilityType string  `json:"availability_type" validate:"required,oneof=Available Unavailable Booked"`
}
