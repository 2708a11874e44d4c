package usecase

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/core/allocate"
	"adpulse/internal/core/detect"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/features"
	"adpulse/internal/core/port"
	"adpulse/internal/core/simulate"
)

// InsightUseCase provides the business logic of the analytics engine. It
// wires the pure core transformations (simulate, detect, allocate,
// features) to the repository and implements the port.InsightUseCase
// interface. The core never touches storage itself; this layer loads the
// table, runs the transformation and persists the output.
type InsightUseCase struct {
	repo port.InsightRepository
}

// NewInsightUseCase creates a usecase backed by the provided repository.
func NewInsightUseCase(repo port.InsightRepository) *InsightUseCase {
	return &InsightUseCase{repo: repo}
}

// GenerateSeries synthesises a metrics table and persists it. Each call
// owns a freshly seeded random source, so concurrent generations never
// interleave draw sequences and a fixed seed reproduces its table exactly.
func (u *InsightUseCase) GenerateSeries(ctx context.Context, req port.GenerateReq) (*port.GenerateResp, error) {
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	records, drops, err := simulate.Generate(simulate.Config{
		Campaigns: req.Campaigns,
		Days:      req.Days,
		StartDate: req.StartDate,
	}, rng)
	if err != nil {
		return nil, err
	}
	if err = u.repo.SaveSeries(ctx, records); err != nil {
		return nil, err
	}
	return &port.GenerateResp{
		Seed:          seed,
		Campaigns:     req.Campaigns,
		Days:          req.Days,
		Records:       len(records),
		InjectedDrops: drops,
	}, nil
}

// ListSeries returns stored records matching the filter.
func (u *InsightUseCase) ListSeries(ctx context.Context, f port.SeriesFilter) ([]domain.DayRecord, error) {
	return u.repo.ListSeries(ctx, f)
}

// LagFeatures derives previous-day feature rows from the stored series.
func (u *InsightUseCase) LagFeatures(ctx context.Context, f port.SeriesFilter) ([]features.Row, error) {
	records, err := u.repo.ListSeries(ctx, f)
	if err != nil {
		return nil, err
	}
	return features.Lag1(records), nil
}

// DetectDrops loads the filtered series, runs rolling detection and
// persists the alerts under a fresh run id. Runs with no alerts are a
// valid outcome and are not persisted.
func (u *InsightUseCase) DetectDrops(ctx context.Context, req port.DetectReq) (*port.DetectResp, error) {
	records, err := u.repo.ListSeries(ctx, req.Filter)
	if err != nil {
		return nil, err
	}
	alerts, err := detect.Detect(records, detect.Params{
		Window:       req.Window,
		DropFraction: req.DropFraction,
		Method:       detect.Method(req.Method),
	})
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	if len(alerts) > 0 {
		if err = u.repo.SaveAlerts(ctx, runID, alerts); err != nil {
			return nil, err
		}
	}
	return &port.DetectResp{RunID: runID, Alerts: alerts}, nil
}

// RecommendBudget loads the stored series, runs the greedy allocator
// against the requested reference date and persists the recommendation.
func (u *InsightUseCase) RecommendBudget(ctx context.Context, req port.RecommendReq) (*port.RecommendResp, error) {
	records, err := u.repo.ListSeries(ctx, port.SeriesFilter{})
	if err != nil {
		return nil, err
	}
	rec, err := allocate.Recommend(records, allocate.Params{
		ReferenceDate: req.ReferenceDate,
		TopK:          req.TopK,
		TotalBudget:   req.TotalBudget,
		Heuristic:     allocate.Heuristic(req.Heuristic),
	})
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	if err = u.repo.SaveRecommendation(ctx, runID, rec); err != nil {
		return nil, err
	}
	return &port.RecommendResp{RunID: runID, Recommendation: rec}, nil
}
