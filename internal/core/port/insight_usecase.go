package port

import (
	"context"
	"time"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/features"
	"adpulse/internal/core/simulate"
)

// InsightUseCase defines the business operations exposed by the analytics
// engine. This interface is the primary port into the application domain.
// Mock implementations can be generated from it for testing.
type InsightUseCase interface {
	// GenerateSeries synthesises a multi-campaign daily metrics table,
	// persists it and returns a run summary including the injected drops.
	GenerateSeries(ctx context.Context, req GenerateReq) (*GenerateResp, error)

	// ListSeries returns stored records matching the filter.
	ListSeries(ctx context.Context, f SeriesFilter) ([]domain.DayRecord, error)

	// LagFeatures derives previous-day feature rows from the stored series
	// for external forecasting models.
	LagFeatures(ctx context.Context, f SeriesFilter) ([]features.Row, error)

	// DetectDrops runs rolling drop detection over the stored series and
	// persists any alerts under a fresh run id.
	DetectDrops(ctx context.Context, req DetectReq) (*DetectResp, error)

	// RecommendBudget produces and persists a greedy budget recommendation
	// for one reference date of the stored series.
	RecommendBudget(ctx context.Context, req RecommendReq) (*RecommendResp, error)
}

// GenerateReq parameterises one synthesis run. A Seed of 0 asks for a
// time-based seed; any other value makes the run reproducible.
type GenerateReq struct {
	Campaigns int       `json:"campaigns"`
	Days      int       `json:"days"`
	Seed      int64     `json:"seed"`
	StartDate time.Time `json:"start_date"`
}

// GenerateResp summarises a synthesis run. Seed echoes the seed actually
// used so time-seeded runs can still be replayed.
type GenerateResp struct {
	Seed          int64                   `json:"seed"`
	Campaigns     int                     `json:"campaigns"`
	Days          int                     `json:"days"`
	Records       int                     `json:"records"`
	InjectedDrops []simulate.InjectedDrop `json:"injected_drops"`
}

// DetectReq parameterises one detection run over the stored series.
// Window, DropFraction and Method fall back to the detector defaults when
// zero-valued.
type DetectReq struct {
	Filter       SeriesFilter `json:"-"`
	Window       int          `json:"window"`
	DropFraction float64      `json:"drop_fraction"`
	Method       string       `json:"method"`
}

// DetectResp carries the run id the alerts were persisted under and the
// alerts themselves, in canonical (date, campaign id) order.
type DetectResp struct {
	RunID  string         `json:"run_id"`
	Alerts []domain.Alert `json:"alerts"`
}

// RecommendReq parameterises one budget recommendation. A zero
// ReferenceDate means the latest date in the stored series.
type RecommendReq struct {
	ReferenceDate time.Time `json:"reference_date"`
	TopK          int       `json:"top_k"`
	TotalBudget   float64   `json:"total_budget"`
	Heuristic     string    `json:"heuristic"`
}

// RecommendResp carries the persisted run id and the recommendation.
type RecommendResp struct {
	RunID          string                `json:"run_id"`
	Recommendation domain.Recommendation `json:"recommendation"`
}
