package models

import (
	"time"

	"github.com/lib/pq"
)

// HostStats are the inputs of the featured predicate
type HostStats struct {
	CancelRate float64 `json:"cancelRate"`
	Total      float64 `json:"total"`
	Duration   float64 `json:"duration"`
	AvgRating  float64 `json:"avgRating"`
}

// FeaturedAudit records one recompute of a host's featured flag
type FeaturedAudit struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	HostID      string         `gorm:"index;not null" json:"hostId"`
	Trigger     string         `json:"trigger"`
	CancelRate  float64        `json:"cancelRate"`
	Total       float64        `json:"total"`
	Duration    float64        `json:"duration"`
	AvgRating   float64        `json:"avgRating"`
	Previous    bool           `json:"previous"`
	Current     bool           `json:"current"`
	Changed     bool           `json:"changed"`
	FailedSteps pq.StringArray `gorm:"type:text[]" json:"failedSteps"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}
