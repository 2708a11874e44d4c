package domain

import (
	"sort"
	"time"
)

// Alert flags a suspicious engagement drop on one campaign-day. Reason is a
// human-readable explanation carrying the numeric evidence (observed value
// and threshold, or z-score). A single campaign-day yields at most one alert
// per detection run.
type Alert struct {
	Date       time.Time `json:"date"`
	CampaignID int64     `json:"campaign_id"`
	Name       string    `json:"name"`
	Reason     string    `json:"reason"`
}

// SortAlerts stably sorts alerts into the canonical (date, campaign id)
// order in place.
func SortAlerts(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if !alerts[i].Date.Equal(alerts[j].Date) {
			return alerts[i].Date.Before(alerts[j].Date)
		}
		return alerts[i].CampaignID < alerts[j].CampaignID
	})
}
