package domain

import "errors"

var (
	// ErrCampaignCount is returned when a generator is asked for fewer than
	// one campaign.
	ErrCampaignCount = errors.New("campaign count must be at least 1")

	// ErrDayCount is returned when a generated series would be too short for
	// any downstream rolling window.
	ErrDayCount = errors.New("day count must be at least 3")

	// ErrWindowSize is returned when a detection window is not positive.
	ErrWindowSize = errors.New("window size must be at least 1")

	// ErrDropFraction is returned when the drop fraction is outside (0, 1).
	ErrDropFraction = errors.New("drop fraction must be between 0 and 1")

	// ErrUnknownMethod is returned for a detection method that is neither
	// "average" nor "zscore".
	ErrUnknownMethod = errors.New("unknown detection method")

	// ErrTopK is returned when the requested ranking size is not positive.
	ErrTopK = errors.New("top-k must be at least 1")

	// ErrTotalBudget is returned when the budget to allocate is not positive.
	ErrTotalBudget = errors.New("total budget must be positive")

	// ErrUnknownHeuristic is returned for a scoring heuristic that is
	// neither "efficiency" nor "roi".
	ErrUnknownHeuristic = errors.New("unknown scoring heuristic")
)
