package domain

import "time"

// BudgetSuggestion is one entry of a recommendation's prioritize list:
// a top-ranked campaign with its score and the budget share the greedy
// walk assigned to it.
type BudgetSuggestion struct {
	CampaignID      int64   `json:"campaign_id"`
	Name            string  `json:"name"`
	Score           float64 `json:"score"`
	SuggestedBudget float64 `json:"suggested_budget"`
}

// PauseAdvice marks a bottom-ranked campaign that should be adjusted or
// paused. Reason is a fixed advisory string, not a computed explanation.
type PauseAdvice struct {
	CampaignID int64  `json:"campaign_id"`
	Name       string `json:"name"`
	Reason     string `json:"reason"`
}

// Recommendation is the allocator's output for one reference date: an
// ordered prioritize list that never exceeds the total budget, and a
// bottom-K adjust/pause list. The two lists may overlap on small
// snapshots; that is intentional and left to the caller to interpret.
type Recommendation struct {
	ReferenceDate time.Time          `json:"reference_date"`
	Heuristic     string             `json:"heuristic"`
	TotalBudget   float64            `json:"total_budget"`
	Prioritize    []BudgetSuggestion `json:"to_prioritize"`
	AdjustOrPause []PauseAdvice      `json:"to_adjust_or_pause"`
}
