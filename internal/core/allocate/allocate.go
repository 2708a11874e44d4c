// Package allocate turns a one-day metrics snapshot into a budget
// recommendation: rank campaigns by a spend-efficiency heuristic, walk the
// top of the ranking handing out budget greedily, and mark the bottom of
// the ranking for adjustment or pause.
package allocate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"adpulse/internal/core/domain"
)

// Heuristic selects the per-record scoring formula.
type Heuristic string

const (
	// HeuristicEfficiency scores conversions per unit of spend. Default.
	HeuristicEfficiency Heuristic = "efficiency"
	// HeuristicROI scores revenue per unit of spend.
	HeuristicROI Heuristic = "roi"
)

const (
	// scoreEpsilon guards zero-cost records in the score denominator. Part
	// of the numeric contract; do not change it.
	scoreEpsilon = 1e-6
	// minSuggested is the floor on any single budget suggestion.
	minSuggested = 100.0
	// costShare is the fraction of a campaign's current daily cost proposed
	// as its next budget.
	costShare = 0.5

	pauseReason = "low score / high cost"
)

// Params configures one recommendation run.
type Params struct {
	// ReferenceDate picks the snapshot day. The zero value means the
	// maximum date present in the table.
	ReferenceDate time.Time
	// TopK bounds both the prioritize and the adjust/pause lists. Must
	// be >= 1.
	TopK int
	// TotalBudget is the amount the greedy walk distributes. Must be > 0.
	TotalBudget float64
	// Heuristic defaults to HeuristicEfficiency when empty.
	Heuristic Heuristic
}

type scored struct {
	rec   domain.DayRecord
	score float64
}

// Recommend ranks the records dated at the reference day and produces a
// budget recommendation. A snapshot with no records yields empty lists, not
// an error; a snapshot smaller than TopK uses all available records. The
// prioritize and adjust/pause lists may overlap on small snapshots — the
// overlap is deliberate and not deduplicated. The input is never mutated.
func Recommend(records []domain.DayRecord, p Params) (domain.Recommendation, error) {
	if p.Heuristic == "" {
		p.Heuristic = HeuristicEfficiency
	}
	if p.TopK < 1 {
		return domain.Recommendation{}, fmt.Errorf("top-k = %d: %w", p.TopK, domain.ErrTopK)
	}
	if p.TotalBudget <= 0 {
		return domain.Recommendation{}, fmt.Errorf("budget = %v: %w", p.TotalBudget, domain.ErrTotalBudget)
	}
	if p.Heuristic != HeuristicEfficiency && p.Heuristic != HeuristicROI {
		return domain.Recommendation{}, fmt.Errorf("%q: %w", p.Heuristic, domain.ErrUnknownHeuristic)
	}

	ref := p.ReferenceDate
	if ref.IsZero() {
		for _, r := range records {
			if r.Date.After(ref) {
				ref = r.Date
			}
		}
	}

	// snapshot in original input order; the stable sort below makes that
	// order the tie-break for equal scores
	var ranked []scored
	for _, r := range records {
		if r.Date.Equal(ref) {
			ranked = append(ranked, scored{rec: r, score: score(r, p.Heuristic)})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	rec := domain.Recommendation{
		ReferenceDate: ref,
		Heuristic:     string(p.Heuristic),
		TotalBudget:   p.TotalBudget,
		Prioritize:    make([]domain.BudgetSuggestion, 0, p.TopK),
		AdjustOrPause: make([]domain.PauseAdvice, 0, p.TopK),
	}

	// greedy walk over the top of the ranking: half the campaign's current
	// daily cost, floored at minSuggested, capped by what remains
	remaining := p.TotalBudget
	for _, s := range ranked[:min(p.TopK, len(ranked))] {
		if remaining <= 0 {
			break
		}
		suggested := math.Min(remaining, math.Max(minSuggested, s.rec.Cost*costShare))
		rec.Prioritize = append(rec.Prioritize, domain.BudgetSuggestion{
			CampaignID:      s.rec.CampaignID,
			Name:            s.rec.Name,
			Score:           s.score,
			SuggestedBudget: domain.Round2(suggested),
		})
		remaining -= suggested
	}

	for _, s := range ranked[len(ranked)-min(p.TopK, len(ranked)):] {
		rec.AdjustOrPause = append(rec.AdjustOrPause, domain.PauseAdvice{
			CampaignID: s.rec.CampaignID,
			Name:       s.rec.Name,
			Reason:     pauseReason,
		})
	}
	return rec, nil
}

func score(r domain.DayRecord, h Heuristic) float64 {
	if h == HeuristicROI {
		return r.Revenue / (r.Cost + scoreEpsilon)
	}
	return float64(r.Conversions) / (r.Cost + scoreEpsilon)
}
