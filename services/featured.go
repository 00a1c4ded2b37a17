package services

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/commands"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/notification"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// Recompute triggers
const (
	TriggerRating       = "rating"
	TriggerCancellation = "cancellation"
	TriggerManual       = "manual"
)

// HostStatsAPI reads the reservation side statistics of a host
type HostStatsAPI interface {
	HostCancelRate(ctx context.Context, hostID string) (float64, error)
	HostTotal(ctx context.Context, hostID string) (float64, error)
	HostDuration(ctx context.Context, hostID string) (float64, error)
}

// HostRatingAPI reads the average score of a host
type HostRatingAPI interface {
	HostAverage(ctx context.Context, hostID string) (float64, error)
}

// IsFeatured is the featured host predicate
func IsFeatured(s models.HostStats) bool {
	return s.AvgRating >= constants.FeaturedMinAvgRating &&
		s.CancelRate < constants.FeaturedMaxCancelRate &&
		s.Total >= constants.FeaturedMinTotal &&
		s.Duration > constants.FeaturedMinDuration
}

type FeaturedService struct {
	api          apiclient.API
	endpoints    config.Endpoints
	reservations HostStatsAPI
	ratings      HostRatingAPI
	audit        AuditStore
	notifier     notification.Service
	logger       logger.Logger
}

func NewFeaturedService(opts ServiceOptions, reservations HostStatsAPI, ratings HostRatingAPI, audit AuditStore, notifier notification.Service) *FeaturedService {
	if audit == nil {
		audit = NopAuditStore{}
	}
	if notifier == nil {
		notifier = notification.Nop{}
	}
	return &FeaturedService{
		api:          opts.API,
		endpoints:    opts.Endpoints,
		reservations: reservations,
		ratings:      ratings,
		audit:        audit,
		notifier:     notifier,
		logger:       opts.logger(),
	}
}

// Current reads the stored featured flag of a host. The profile service
// answers either a bare boolean or {"featured": bool}.
func (s *FeaturedService) Current(ctx context.Context, hostID string) (bool, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, s.endpoints.Featured(hostID), &raw); err != nil {
		return false, err
	}
	return parseFeaturedFlag(raw)
}

func parseFeaturedFlag(raw []byte) (bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	var flag bool
	if err := json.Unmarshal(raw, &flag); err == nil {
		return flag, nil
	}
	var wrapped struct {
		Featured bool `json:"featured"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return false, fmt.Errorf("decode featured flag: %w", err)
	}
	return wrapped.Featured, nil
}

// Stats fetches the predicate inputs and the current flag concurrently.
// The names of the failed fetches are returned alongside the first error.
func (s *FeaturedService) Stats(ctx context.Context, hostID string) (models.HostStats, bool, []string, error) {
	var (
		stats   models.HostStats
		current bool
		mu      sync.Mutex
		failed  []string
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(step string, fn func(context.Context) error) {
		g.Go(func() error {
			if err := fn(gctx); err != nil {
				mu.Lock()
				failed = append(failed, step)
				mu.Unlock()
				return fmt.Errorf("%s: %w", step, err)
			}
			return nil
		})
	}

	fetch("cancel_rate", func(ctx context.Context) (err error) {
		stats.CancelRate, err = s.reservations.HostCancelRate(ctx, hostID)
		return
	})
	fetch("total", func(ctx context.Context) (err error) {
		stats.Total, err = s.reservations.HostTotal(ctx, hostID)
		return
	})
	fetch("duration", func(ctx context.Context) (err error) {
		stats.Duration, err = s.reservations.HostDuration(ctx, hostID)
		return
	})
	fetch("avg_rating", func(ctx context.Context) (err error) {
		stats.AvgRating, err = s.ratings.HostAverage(ctx, hostID)
		return
	})
	fetch("current_flag", func(ctx context.Context) (err error) {
		current, err = s.Current(ctx, hostID)
		return
	})

	err := g.Wait()
	return stats, current, failed, err
}

// Recompute re-evaluates the featured flag of a host and writes it back
// only when it changed. Nothing is written when any input is missing.
func (s *FeaturedService) Recompute(ctx context.Context, hostID, trigger string) (*models.FeaturedAudit, error) {
	if hostID == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Host id is required", nil)
	}

	stats, current, failed, err := s.Stats(ctx, hostID)
	audit := &models.FeaturedAudit{
		HostID:     hostID,
		Trigger:    trigger,
		CancelRate: stats.CancelRate,
		Total:      stats.Total,
		Duration:   stats.Duration,
		AvgRating:  stats.AvgRating,
		Previous:   current,
		Current:    current,
	}
	if err != nil {
		audit.FailedSteps = failed
		s.record(ctx, audit)
		s.logger.Error("featured recompute for %s aborted: %v", hostID, err)
		return audit, err
	}

	featured := IsFeatured(stats)
	if featured != current {
		var cmd commands.Command
		if featured {
			cmd = commands.NewSetFeaturedCommand(s.api, s.endpoints.SetFeatured(hostID))
		} else {
			cmd = commands.NewUnsetFeaturedCommand(s.api, s.endpoints.UnsetFeatured(hostID))
		}
		if err := cmd.Execute(ctx); err != nil {
			audit.FailedSteps = []string{"write_flag"}
			s.record(ctx, audit)
			return audit, err
		}
		audit.Current = featured
		audit.Changed = true
	}

	s.record(ctx, audit)
	if audit.Changed {
		s.logger.Info("host %s featured: %t -> %t", hostID, current, featured)
		n := notification.NewMessageBuilder(hostID).FeaturedChanged(hostID, featured).Build()
		if err := s.notifier.Send(n); err != nil {
			s.logger.Error("broadcast featured change for %s: %v", hostID, err)
		}
	}
	return audit, nil
}

// History lists the latest recorded evaluations of a host
func (s *FeaturedService) History(ctx context.Context, hostID string, limit int) ([]models.FeaturedAudit, error) {
	return s.audit.ListByHost(ctx, hostID, limit)
}

func (s *FeaturedService) record(ctx context.Context, audit *models.FeaturedAudit) {
	if err := s.audit.Record(ctx, audit); err != nil {
		s.logger.Error("record featured audit for %s: %v", audit.HostID, err)
	}
}
