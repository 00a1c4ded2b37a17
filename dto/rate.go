package dto

type RatingRequest struct {
	Rating int `json:"rating" validate:"gte=1,lte=5"`
}
