package domain

import (
	"math"
	"sort"
	"time"
)

// DayRecord is one campaign-day of delivery metrics. It is the unit every
// core operation consumes and produces: the generator emits them, the
// detector and allocator read them. Records are immutable once built.
// Cost and Revenue are currency amounts rounded to 2 decimals.
//
// Clicks ≤ Impressions usually holds but is not guaranteed: generation
// noise can break it, and externally supplied tables may too. Consumers
// must not rely on it.
type DayRecord struct {
	Date        time.Time `json:"date"`
	CampaignID  int64     `json:"campaign_id"`
	Name        string    `json:"name"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Cost        float64   `json:"cost"`
	Revenue     float64   `json:"revenue"`
}

// Day truncates t to midnight UTC. All record dates are normalised with it
// so exact-day equality is well defined across generator, detector and
// allocator.
func Day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// SortByCampaignDate stably sorts records by (campaign id, date) in place.
// Rolling computations require date-ascending order within each campaign;
// the generator's output is grouped but not globally ordered, so callers
// normalise with this before windowed passes.
func SortByCampaignDate(records []DayRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CampaignID != records[j].CampaignID {
			return records[i].CampaignID < records[j].CampaignID
		}
		return records[i].Date.Before(records[j].Date)
	})
}

// Round2 rounds a currency amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
