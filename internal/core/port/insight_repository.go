package port

import (
	"context"
	"time"

	"adpulse/internal/core/domain"
)

// SeriesFilter narrows which campaign-day records a repository returns.
// Zero-value fields mean "unbounded".
type SeriesFilter struct {
	CampaignID *int64
	From       time.Time
	To         time.Time
}

// InsightRepository defines the persistence layer for metrics tables and
// analysis outputs. It is an outbound port in hexagonal architecture.
// Implementations must be concurrency-safe.
type InsightRepository interface {
	// SaveSeries stores a table of campaign-day records, upserting on
	// (campaign id, date).
	SaveSeries(ctx context.Context, records []domain.DayRecord) error
	// ListSeries returns stored records matching the filter, ordered by
	// (campaign id, date).
	ListSeries(ctx context.Context, f SeriesFilter) ([]domain.DayRecord, error)
	// SaveAlerts stores the alerts of one detection run.
	SaveAlerts(ctx context.Context, runID string, alerts []domain.Alert) error
	// SaveRecommendation stores one budget recommendation.
	SaveRecommendation(ctx context.Context, runID string, rec domain.Recommendation) error
}
