package services

import (
	"context"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/commands"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"

	"gorm.io/gorm"
)

const defaultAuditLimit = 20

// AuditStore keeps the history of featured evaluations
type AuditStore interface {
	Record(ctx context.Context, audit *models.FeaturedAudit) error
	ListByHost(ctx context.Context, hostID string, limit int) ([]models.FeaturedAudit, error)
}

type GormAuditStore struct {
	db *gorm.DB
}

// NewGormAuditStore migrates the audit table and returns a store on db
func NewGormAuditStore(db *gorm.DB) (*GormAuditStore, error) {
	if err := db.AutoMigrate(&models.FeaturedAudit{}); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to migrate featured audits", err)
	}
	return &GormAuditStore{db: db}, nil
}

func (s *GormAuditStore) Record(ctx context.Context, audit *models.FeaturedAudit) error {
	return commands.NewRecordAuditCommand(audit, s.db).Execute(ctx)
}

func (s *GormAuditStore) ListByHost(ctx context.Context, hostID string, limit int) ([]models.FeaturedAudit, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	var audits []models.FeaturedAudit
	err := s.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Limit(limit).
		Find(&audits).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load featured audits", err)
	}
	return audits, nil
}

// NopAuditStore is used when no database is configured
type NopAuditStore struct{}

func (NopAuditStore) Record(context.Context, *models.FeaturedAudit) error { return nil }
func (NopAuditStore) ListByHost(context.Context, string, int) ([]models.FeaturedAudit, error) {
	return nil, nil
}
