package models

import "time"

// RatingUser is the trimmed user embedded in rating documents
type RatingUser struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Rating struct {
	ID              string      `json:"id"`
	Host            *RatingUser `json:"host,omitempty"`
	AccommodationID string      `json:"accommodationID,omitempty"`
	Guest           *RatingUser `json:"guest,omitempty"`
	DateAndTime     time.Time   `json:"date-and-time"`
	Rating          int         `json:"rating"`
}

// RatingSummary is the aggregate returned by the rating lists
type RatingSummary struct {
	AverageRating float64  `json:"averageRating"`
	Ratings       []Rating `json:"ratings"`
}
