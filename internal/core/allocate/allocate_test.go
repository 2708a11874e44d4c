package allocate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/simulate"
)

var refDay = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func snapshotRecord(cid int64, conversions int64, cost, revenue float64) domain.DayRecord {
	return domain.DayRecord{
		Date:        refDay,
		CampaignID:  cid,
		Name:        "Campaign",
		Impressions: 10000,
		Clicks:      500,
		Conversions: conversions,
		Cost:        cost,
		Revenue:     revenue,
	}
}

func TestRecommendGreedyWalk(t *testing.T) {
	// efficiency scores 5.0, 3.0, 1.0 with costs 200, 100, 50: the first
	// suggestion is half-cost 100, the second is capped by the remaining 50
	records := []domain.DayRecord{
		snapshotRecord(1, 1000, 200, 0),
		snapshotRecord(2, 300, 100, 0),
		snapshotRecord(3, 50, 50, 0),
	}

	rec, err := Recommend(records, Params{TopK: 2, TotalBudget: 150})
	require.NoError(t, err)

	require.Len(t, rec.Prioritize, 2)
	assert.Equal(t, int64(1), rec.Prioritize[0].CampaignID)
	assert.InDelta(t, 5.0, rec.Prioritize[0].Score, 1e-6)
	assert.Equal(t, 100.0, rec.Prioritize[0].SuggestedBudget)
	assert.Equal(t, int64(2), rec.Prioritize[1].CampaignID)
	assert.InDelta(t, 3.0, rec.Prioritize[1].Score, 1e-6)
	assert.Equal(t, 50.0, rec.Prioritize[1].SuggestedBudget)

	// adjust/pause is the bottom two of the ranking, in ranking order
	require.Len(t, rec.AdjustOrPause, 2)
	assert.Equal(t, int64(2), rec.AdjustOrPause[0].CampaignID)
	assert.Equal(t, int64(3), rec.AdjustOrPause[1].CampaignID)
	assert.Equal(t, "low score / high cost", rec.AdjustOrPause[0].Reason)
}

func TestRecommendStopsWhenBudgetExhausted(t *testing.T) {
	records := []domain.DayRecord{
		snapshotRecord(1, 900, 300, 0), // half-cost 150 consumes everything
		snapshotRecord(2, 400, 200, 0),
		snapshotRecord(3, 100, 100, 0),
	}

	rec, err := Recommend(records, Params{TopK: 3, TotalBudget: 150})
	require.NoError(t, err)
	// no zero-budget entries once remaining hits 0
	require.Len(t, rec.Prioritize, 1)
	assert.Equal(t, 150.0, rec.Prioritize[0].SuggestedBudget)
}

func TestRecommendSuggestionFloor(t *testing.T) {
	// half of a 40-unit cost is below the floor; the suggestion snaps to 100
	records := []domain.DayRecord{snapshotRecord(1, 10, 40, 0)}

	rec, err := Recommend(records, Params{TopK: 1, TotalBudget: 500})
	require.NoError(t, err)
	require.Len(t, rec.Prioritize, 1)
	assert.Equal(t, 100.0, rec.Prioritize[0].SuggestedBudget)
}

func TestRecommendNeverExceedsBudget(t *testing.T) {
	records, _, err := simulate.Generate(simulate.Config{
		Campaigns: 8,
		Days:      30,
		StartDate: refDay.AddDate(0, 0, -29),
	}, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	for _, budget := range []float64{50, 300, 1200, 100000} {
		rec, err := Recommend(records, Params{TopK: 5, TotalBudget: budget})
		require.NoError(t, err)
		var sum float64
		for _, s := range rec.Prioritize {
			sum += s.SuggestedBudget
		}
		assert.LessOrEqual(t, sum, budget+0.01, "budget %v", budget)
		assert.LessOrEqual(t, len(rec.Prioritize), 5)
		assert.Len(t, rec.AdjustOrPause, 5)
	}
}

func TestRecommendDefaultsToLatestDate(t *testing.T) {
	older := snapshotRecord(1, 100, 100, 0)
	older.Date = refDay.AddDate(0, 0, -5)
	records := []domain.DayRecord{older, snapshotRecord(2, 100, 100, 0)}

	rec, err := Recommend(records, Params{TopK: 3, TotalBudget: 1000})
	require.NoError(t, err)
	assert.True(t, rec.ReferenceDate.Equal(refDay))
	require.Len(t, rec.Prioritize, 1)
	assert.Equal(t, int64(2), rec.Prioritize[0].CampaignID)
}

func TestRecommendNoSnapshot(t *testing.T) {
	records := []domain.DayRecord{snapshotRecord(1, 100, 100, 0)}

	rec, err := Recommend(records, Params{
		ReferenceDate: refDay.AddDate(0, 0, 1),
		TopK:          3,
		TotalBudget:   1000,
	})
	require.NoError(t, err)
	assert.NotNil(t, rec.Prioritize)
	assert.Empty(t, rec.Prioritize)
	assert.NotNil(t, rec.AdjustOrPause)
	assert.Empty(t, rec.AdjustOrPause)
}

func TestRecommendSmallSnapshotOverlap(t *testing.T) {
	// with 3 ranked records and top-k 2, the middle record lands in both
	// lists; the overlap is intentional and must not be deduplicated
	records := []domain.DayRecord{
		snapshotRecord(1, 1000, 200, 0),
		snapshotRecord(2, 300, 100, 0),
		snapshotRecord(3, 50, 50, 0),
	}

	rec, err := Recommend(records, Params{TopK: 2, TotalBudget: 10000})
	require.NoError(t, err)
	require.Len(t, rec.Prioritize, 2)
	require.Len(t, rec.AdjustOrPause, 2)
	assert.Equal(t, int64(2), rec.Prioritize[1].CampaignID)
	assert.Equal(t, int64(2), rec.AdjustOrPause[0].CampaignID)
}

func TestRecommendTieBreakIsStable(t *testing.T) {
	// identical scores keep snapshot order
	records := []domain.DayRecord{
		snapshotRecord(7, 100, 100, 0),
		snapshotRecord(3, 100, 100, 0),
		snapshotRecord(5, 100, 100, 0),
	}

	rec, err := Recommend(records, Params{TopK: 3, TotalBudget: 10000})
	require.NoError(t, err)
	require.Len(t, rec.Prioritize, 3)
	assert.Equal(t, int64(7), rec.Prioritize[0].CampaignID)
	assert.Equal(t, int64(3), rec.Prioritize[1].CampaignID)
	assert.Equal(t, int64(5), rec.Prioritize[2].CampaignID)
}

func TestRecommendROIHeuristic(t *testing.T) {
	// campaign 2 wins on revenue even though campaign 1 wins on conversions
	records := []domain.DayRecord{
		snapshotRecord(1, 500, 100, 200),
		snapshotRecord(2, 100, 100, 900),
	}

	rec, err := Recommend(records, Params{TopK: 1, TotalBudget: 1000, Heuristic: HeuristicROI})
	require.NoError(t, err)
	assert.Equal(t, "roi", rec.Heuristic)
	require.Len(t, rec.Prioritize, 1)
	assert.Equal(t, int64(2), rec.Prioritize[0].CampaignID)
	assert.InDelta(t, 9.0, rec.Prioritize[0].Score, 1e-6)
}

func TestRecommendZeroCostGuard(t *testing.T) {
	records := []domain.DayRecord{snapshotRecord(1, 100, 0, 0)}

	rec, err := Recommend(records, Params{TopK: 1, TotalBudget: 1000})
	require.NoError(t, err)
	require.Len(t, rec.Prioritize, 1)
	// conversions / epsilon, huge but finite
	assert.InDelta(t, 1e8, rec.Prioritize[0].Score, 1)
}

func TestRecommendIdempotence(t *testing.T) {
	records := []domain.DayRecord{
		snapshotRecord(1, 1000, 200, 300),
		snapshotRecord(2, 300, 100, 800),
		snapshotRecord(3, 50, 50, 100),
	}
	p := Params{TopK: 2, TotalBudget: 500, Heuristic: HeuristicROI}

	first, err := Recommend(records, p)
	require.NoError(t, err)
	second, err := Recommend(records, p)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRecommendConfigErrors(t *testing.T) {
	records := []domain.DayRecord{snapshotRecord(1, 100, 100, 0)}

	_, err := Recommend(records, Params{TopK: 0, TotalBudget: 100})
	require.ErrorIs(t, err, domain.ErrTopK)

	_, err = Recommend(records, Params{TopK: 1, TotalBudget: 0})
	require.ErrorIs(t, err, domain.ErrTotalBudget)

	_, err = Recommend(records, Params{TopK: 1, TotalBudget: 100, Heuristic: "cpa"})
	require.ErrorIs(t, err, domain.ErrUnknownHeuristic)
}
