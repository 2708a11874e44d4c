package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
	"adpulse/internal/core/port/mocks"
)

var testStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

// TestGenerateSeriesPersists ensures a synthesised table is stored and the
// summary reflects the run.
func TestGenerateSeriesPersists(t *testing.T) {
	repo := mocks.NewMockInsightRepository(t)

	var saved []domain.DayRecord
	repo.EXPECT().
		SaveSeries(mock.Anything, mock.AnythingOfType("[]domain.DayRecord")).
		Run(func(ctx context.Context, records []domain.DayRecord) {
			saved = records
		}).
		Return(nil)

	svc := NewInsightUseCase(repo)
	resp, err := svc.GenerateSeries(context.Background(), port.GenerateReq{
		Campaigns: 3,
		Days:      30,
		Seed:      7,
		StartDate: testStart,
	})
	if err != nil {
		t.Fatalf("GenerateSeries error: %v", err)
	}

	require.Equal(t, int64(7), resp.Seed)
	require.Equal(t, 90, resp.Records)
	require.Len(t, saved, 90)
	require.Len(t, resp.InjectedDrops, 6)
}

// TestGenerateSeriesInvalidConfig ensures parameter errors fail fast
// without touching the repository.
func TestGenerateSeriesInvalidConfig(t *testing.T) {
	repo := mocks.NewMockInsightRepository(t)

	svc := NewInsightUseCase(repo)
	_, err := svc.GenerateSeries(context.Background(), port.GenerateReq{Campaigns: 0, Days: 30})
	require.ErrorIs(t, err, domain.ErrCampaignCount)
}

// dropSeries is one campaign at 100 clicks for a week, then three days at 20.
func dropSeries() []domain.DayRecord {
	clicks := []int64{100, 100, 100, 100, 100, 100, 100, 20, 20, 20}
	records := make([]domain.DayRecord, 0, len(clicks))
	for d, c := range clicks {
		records = append(records, domain.DayRecord{
			Date:       testStart.AddDate(0, 0, d),
			CampaignID: 1,
			Name:       "Campaign 1",
			Clicks:     c,
			Cost:       float64(c) * 0.5,
		})
	}
	return records
}

// TestDetectDropsPersistsAlerts ensures detected alerts are stored under a
// fresh run id and returned in canonical order.
func TestDetectDropsPersistsAlerts(t *testing.T) {
	repo := mocks.NewMockInsightRepository(t)

	repo.EXPECT().
		ListSeries(mock.Anything, port.SeriesFilter{}).
		Return(dropSeries(), nil)
	repo.EXPECT().
		SaveAlerts(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]domain.Alert")).
		Return(nil)

	svc := NewInsightUseCase(repo)
	resp, err := svc.DetectDrops(context.Background(), port.DetectReq{
		Window:       7,
		DropFraction: 0.3,
		Method:       "average",
	})
	if err != nil {
		t.Fatalf("DetectDrops error: %v", err)
	}
	require.NotEmpty(t, resp.RunID)
	require.Len(t, resp.Alerts, 3)
}

// TestDetectDropsNoAlerts ensures an empty detection run is a valid
// response and nothing is persisted.
func TestDetectDropsNoAlerts(t *testing.T) {
	repo := mocks.NewMockInsightRepository(t)

	flat := dropSeries()[:7]
	repo.EXPECT().
		ListSeries(mock.Anything, port.SeriesFilter{}).
		Return(flat, nil)

	svc := NewInsightUseCase(repo)
	resp, err := svc.DetectDrops(context.Background(), port.DetectReq{})
	if err != nil {
		t.Fatalf("DetectDrops error: %v", err)
	}
	require.Empty(t, resp.Alerts)
}

// TestRecommendBudgetPersists ensures the allocator output is stored and
// passed through.
func TestRecommendBudgetPersists(t *testing.T) {
	repo := mocks.NewMockInsightRepository(t)

	snapshot := []domain.DayRecord{
		{Date: testStart, CampaignID: 1, Name: "Campaign 1", Conversions: 1000, Cost: 200},
		{Date: testStart, CampaignID: 2, Name: "Campaign 2", Conversions: 300, Cost: 100},
		{Date: testStart, CampaignID: 3, Name: "Campaign 3", Conversions: 50, Cost: 50},
	}
	repo.EXPECT().
		ListSeries(mock.Anything, port.SeriesFilter{}).
		Return(snapshot, nil)

	var persisted domain.Recommendation
	repo.EXPECT().
		SaveRecommendation(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("domain.Recommendation")).
		Run(func(ctx context.Context, runID string, rec domain.Recommendation) {
			persisted = rec
		}).
		Return(nil)

	svc := NewInsightUseCase(repo)
	resp, err := svc.RecommendBudget(context.Background(), port.RecommendReq{
		TopK:        2,
		TotalBudget: 150,
	})
	if err != nil {
		t.Fatalf("RecommendBudget error: %v", err)
	}

	require.NotEmpty(t, resp.RunID)
	require.Equal(t, persisted, resp.Recommendation)
	require.Len(t, resp.Recommendation.Prioritize, 2)
	require.Equal(t, 100.0, resp.Recommendation.Prioritize[0].SuggestedBudget)
	require.Equal(t, 50.0, resp.Recommendation.Prioritize[1].SuggestedBudget)
}

// TestRecommendBudgetInvalidConfig ensures parameter errors surface before
// any write.
func TestRecommendBudgetInvalidConfig(t *testing.T) {
	repo := mocks.NewMockInsightRepository(t)

	repo.EXPECT().
		ListSeries(mock.Anything, port.SeriesFilter{}).
		Return(nil, nil)

	svc := NewInsightUseCase(repo)
	_, err := svc.RecommendBudget(context.Background(), port.RecommendReq{TopK: 0, TotalBudget: 100})
	require.ErrorIs(t, err, domain.ErrTopK)
}
