package models

import "time"

type DailyReport struct {
	ReportID         string    `json:"report_id_time_created"`
	AccommodationID  string    `json:"accommodation_id"`
	Date             time.Time `json:"date"`
	ReservationCount int       `json:"reservation_count"`
	RatingCount      int       `json:"rating_count"`
	PageVisits       int       `json:"page_visits"`
	AverageVisitTime float64   `json:"average_visit_time"`
}

type MonthlyReport struct {
	ReportID         string  `json:"report_id_time_created"`
	AccommodationID  string  `json:"accommodation_id"`
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	ReservationCount int     `json:"reservation_count"`
	RatingCount      int     `json:"rating_count"`
	PageVisits       int     `json:"page_visits"`
	AverageVisitTime float64 `json:"average_visit_time"`
}
