package services

import (
	"context"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"
)

type ReportService struct {
	api       apiclient.API
	endpoints config.Endpoints
}

func NewReportService(opts ServiceOptions) *ReportService {
	return &ReportService{api: opts.API, endpoints: opts.Endpoints}
}

func (s *ReportService) Daily(ctx context.Context, accID string) (*models.DailyReport, error) {
	var report models.DailyReport
	if err := s.api.Post(ctx, s.endpoints.DailyReport(accID), struct{}{}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *ReportService) Monthly(ctx context.Context, accID string) (*models.MonthlyReport, error) {
	var report models.MonthlyReport
	if err := s.api.Post(ctx, s.endpoints.MonthlyReport(accID), struct{}{}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
