package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityService(api *fakeAPI, now time.Time) *AvailabilityService {
	svc := NewAvailabilityService(ServiceOptions{API: api, Endpoints: testEndpoints()})
	svc.now = func() time.Time { return now }
	return svc
}

func periodRequest(start, end string) *dto.AvailabilityPeriodRequest {
	return &dto.AvailabilityPeriodRequest{
		StartDate:        start,
		EndDate:          end,
		Price:            80,
		PriceType:        "Per_Guest",
		AvailabilityType: "Available",
	}
}

func TestCreatePeriod_Posts(t *testing.T) {
	e := testEndpoints()
	api := newFakeAPI()
	svc := newAvailabilityService(api, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	period, err := svc.CreatePeriod(context.Background(), "acc1", periodRequest("2024-06-01", "2024-06-10"))

	require.NoError(t, err)
	assert.Equal(t, "acc1", period.AccommodationID)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), period.StartDate)
	require.Equal(t, 1, api.called(http.MethodPost, e.CreateAvailability("acc1")))
	body, ok := api.calls[0].Body.(*models.AvailabilityPeriod)
	require.True(t, ok)
	assert.Equal(t, 80.0, body.Price)
}

func TestCreatePeriod_Rejections(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		req  *dto.AvailabilityPeriodRequest
		code errors.ErrorCode
	}{
		{"start in the past", periodRequest("2024-04-30", "2024-05-03"), errors.ErrCodeInvalidDates},
		{"end before start", periodRequest("2024-06-10", "2024-06-01"), errors.ErrCodeInvalidDates},
		{"missing dates", periodRequest("", "2024-06-01"), errors.ErrCodeRequiredField},
		{"zero price", func() *dto.AvailabilityPeriodRequest {
			r := periodRequest("2024-06-01", "2024-06-10")
			r.Price = 0
			return r
		}(), errors.ErrCodeInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			svc := newAvailabilityService(api, now)

			_, err := svc.CreatePeriod(context.Background(), "acc1", tt.req)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Empty(t, api.calls)
		})
	}
}

func TestCreatePeriod_TodayAllowed(t *testing.T) {
	api := newFakeAPI()
	svc := newAvailabilityService(api, time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC))

	_, err := svc.CreatePeriod(context.Background(), "acc1", periodRequest("2024-05-01", "2024-05-01"))

	assert.NoError(t, err)
}
