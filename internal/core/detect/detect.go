// Package detect flags anomalous engagement drops in campaign-day metrics
// using per-campaign rolling statistics over clicks.
package detect

import (
	"fmt"
	"math"
	"sort"

	"adpulse/internal/core/domain"
)

// Method selects the rolling statistic used to judge a day's clicks.
// Exactly one method runs per detection; they are never combined.
type Method string

const (
	// MethodAverage flags a day whose clicks fall a configured fraction
	// below the rolling mean.
	MethodAverage Method = "average"
	// MethodZScore flags a day whose clicks lie more than two rolling
	// standard deviations below the rolling mean.
	MethodZScore Method = "zscore"
)

const (
	// DefaultWindow is the rolling window length in days.
	DefaultWindow = 7
	// DefaultDropFraction is the relative drop below the rolling mean that
	// triggers an average-method alert.
	DefaultDropFraction = 0.3

	zScoreFloor = -2.0
	// zEpsilon keeps the z-score finite when a window has zero variance.
	// The magnitude is part of the numeric contract; do not change it.
	zEpsilon = 1e-9
)

// Params configures one detection run. Zero values fall back to the
// defaults (window 7, drop fraction 0.3, average method).
type Params struct {
	Window       int
	DropFraction float64
	Method       Method
}

func (p Params) withDefaults() Params {
	if p.Window == 0 {
		p.Window = DefaultWindow
	}
	if p.DropFraction == 0 {
		p.DropFraction = DefaultDropFraction
	}
	if p.Method == "" {
		p.Method = MethodAverage
	}
	return p
}

func (p Params) validate() error {
	if p.Window < 1 {
		return fmt.Errorf("window = %d: %w", p.Window, domain.ErrWindowSize)
	}
	if p.DropFraction <= 0 || p.DropFraction >= 1 {
		return fmt.Errorf("drop fraction = %v: %w", p.DropFraction, domain.ErrDropFraction)
	}
	if p.Method != MethodAverage && p.Method != MethodZScore {
		return fmt.Errorf("%q: %w", p.Method, domain.ErrUnknownMethod)
	}
	return nil
}

// Detect scans each campaign's series with an inclusive trailing window of
// p.Window days and returns alerts sorted by (date, campaign id). The first
// Window-1 days of every campaign have no defined rolling value and are
// skipped, never flagged. Campaigns are fully independent: one campaign's
// window never sees another's data. The input is not mutated; an empty
// result is a valid outcome, not an error.
func Detect(records []domain.DayRecord, p Params) ([]domain.Alert, error) {
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}

	// partition by campaign, keeping first-seen campaign order so ties in
	// the final sort stay deterministic
	groups := make(map[int64][]domain.DayRecord)
	var order []int64
	for _, r := range records {
		if _, ok := groups[r.CampaignID]; !ok {
			order = append(order, r.CampaignID)
		}
		groups[r.CampaignID] = append(groups[r.CampaignID], r)
	}

	alerts := make([]domain.Alert, 0)
	for _, cid := range order {
		group := groups[cid]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})
		alerts = append(alerts, scan(group, p)...)
	}
	domain.SortAlerts(alerts)
	return alerts, nil
}

// scan runs the windowed pass over one date-ascending campaign series.
func scan(group []domain.DayRecord, p Params) []domain.Alert {
	var out []domain.Alert
	for i := p.Window - 1; i < len(group); i++ {
		window := group[i-p.Window+1 : i+1]
		mean := meanClicks(window)
		rec := group[i]

		var reason string
		switch p.Method {
		case MethodAverage:
			threshold := (1 - p.DropFraction) * mean
			if float64(rec.Clicks) < threshold {
				reason = fmt.Sprintf("clicks %d below %.0f (%d-day moving average)",
					rec.Clicks, threshold, p.Window)
			}
		case MethodZScore:
			z := (float64(rec.Clicks) - mean) / (stddevClicks(window, mean) + zEpsilon)
			if z < zScoreFloor {
				reason = fmt.Sprintf("click z-score = %.2f (below -2σ)", z)
			}
		}
		if reason != "" {
			out = append(out, domain.Alert{
				Date:       rec.Date,
				CampaignID: rec.CampaignID,
				Name:       rec.Name,
				Reason:     reason,
			})
		}
	}
	return out
}

func meanClicks(window []domain.DayRecord) float64 {
	var sum float64
	for _, r := range window {
		sum += float64(r.Clicks)
	}
	return sum / float64(len(window))
}

// stddevClicks is the sample (n-1) standard deviation of clicks in the
// window. A single-element window has no sample deviation; 0 is returned
// and the caller's epsilon takes over.
func stddevClicks(window []domain.DayRecord, mean float64) float64 {
	if len(window) < 2 {
		return 0
	}
	var sum float64
	for _, r := range window {
		d := float64(r.Clicks) - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(window)-1))
}
