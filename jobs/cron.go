package jobs

import (
	"context"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"

	"github.com/robfig/cron/v3"
)

const (
	warmSchedule = "@every 10m"
	warmTimeout  = 30 * time.Second
)

// AccommodationWarmer reloads the unfiltered accommodation list into the cache
type AccommodationWarmer interface {
	Refresh(ctx context.Context) ([]models.Accommodation, error)
}

// InitCronJobs registers the periodic jobs and starts the scheduler
func InitCronJobs(c *cron.Cron, warmer AccommodationWarmer, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	_, err := c.AddFunc(warmSchedule, func() {
		WarmAccommodations(context.Background(), warmer, log)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}

// WarmAccommodations runs one cache refresh
func WarmAccommodations(ctx context.Context, warmer AccommodationWarmer, log logger.Logger) {
	ctx, cancel := context.WithTimeout(ctx, warmTimeout)
	defer cancel()

	accommodations, err := warmer.Refresh(ctx)
	if err != nil {
		log.Error("warm accommodations cache: %v", err)
		return
	}
	log.Debug("accommodations cache warmed with %d entries", len(accommodations))
}
