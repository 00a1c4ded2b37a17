package commands

import (
	"context"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"

	"gorm.io/gorm"
)

// Command is a single side effect of a featured recompute
type Command interface {
	Execute(ctx context.Context) error
}

// SetFeaturedCommand flags a host as featured on the profile service
type SetFeaturedCommand struct {
	api apiclient.API
	url string
}

func NewSetFeaturedCommand(api apiclient.API, url string) *SetFeaturedCommand {
	return &SetFeaturedCommand{api: api, url: url}
}

func (c *SetFeaturedCommand) Execute(ctx context.Context) error {
	return c.api.Post(ctx, c.url, struct{}{}, nil)
}

// UnsetFeaturedCommand clears the featured flag
type UnsetFeaturedCommand struct {
	api apiclient.API
	url string
}

func NewUnsetFeaturedCommand(api apiclient.API, url string) *UnsetFeaturedCommand {
	return &UnsetFeaturedCommand{api: api, url: url}
}

func (c *UnsetFeaturedCommand) Execute(ctx context.Context) error {
	return c.api.Post(ctx, c.url, struct{}{}, nil)
}

// RecordAuditCommand stores one featured evaluation
type RecordAuditCommand struct {
	audit *models.FeaturedAudit
	db    *gorm.DB
}

func NewRecordAuditCommand(audit *models.FeaturedAudit, db *gorm.DB) *RecordAuditCommand {
	return &RecordAuditCommand{audit: audit, db: db}
}

func (c *RecordAuditCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Create(c.audit).Error
}
