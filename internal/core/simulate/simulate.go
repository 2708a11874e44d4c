// Package simulate produces synthetic multi-campaign daily metrics tables
// for testing the detector and allocator. Each campaign gets a fixed random
// profile, a weekly seasonal shape, day-level noise, and two deliberately
// injected traffic collapses that downstream detection should recover.
package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"adpulse/internal/core/domain"
)

// Config controls one generation run.
type Config struct {
	// Campaigns is the number of campaigns to synthesise. Must be >= 1.
	Campaigns int
	// Days is the series length per campaign. Must be >= 3; series shorter
	// than the detector's rolling window produce zero alerts by construction.
	Days int
	// StartDate is the first day of every campaign's series. The zero value
	// means "today minus (Days-1)", so the series ends on the current day.
	StartDate time.Time
}

// InjectedDrop records where the generator deliberately collapsed traffic.
// It is bookkeeping for tests and demos, not part of the emitted table:
// detection quality is measured by how many of these the detector finds.
type InjectedDrop struct {
	CampaignID int64     `json:"campaign_id"`
	Date       time.Time `json:"date"`
}

// profile holds the per-campaign parameters drawn once before the
// campaign's series and fixed for its whole lifetime.
type profile struct {
	baseImpressions float64
	clickRate       float64
	convRate        float64
	costPerClick    float64
	orderValue      float64
}

func drawProfile(rng *rand.Rand) profile {
	return profile{
		baseImpressions: float64(8000 + rng.Intn(22000)),
		clickRate:       0.03 + rng.Float64()*0.09,
		convRate:        0.03 + rng.Float64()*0.15,
		costPerClick:    0.4 + rng.Float64()*1.4,
		orderValue:      20 + rng.Float64()*45,
	}
}

// Generate builds a metrics table of Campaigns×Days records plus the list
// of injected drops. The caller owns the random source; seeding it once per
// call makes the output fully reproducible and isolates concurrent runs.
//
// Records are appended campaign by campaign, date-ascending within each
// campaign. Global (campaign, date) order is NOT guaranteed; callers that
// need it should apply domain.SortByCampaignDate.
func Generate(cfg Config, rng *rand.Rand) ([]domain.DayRecord, []InjectedDrop, error) {
	if cfg.Campaigns < 1 {
		return nil, nil, fmt.Errorf("campaigns = %d: %w", cfg.Campaigns, domain.ErrCampaignCount)
	}
	if cfg.Days < 3 {
		return nil, nil, fmt.Errorf("days = %d: %w", cfg.Days, domain.ErrDayCount)
	}

	start := cfg.StartDate
	if start.IsZero() {
		start = domain.Day(time.Now()).AddDate(0, 0, -(cfg.Days - 1))
	} else {
		start = domain.Day(start)
	}

	records := make([]domain.DayRecord, 0, cfg.Campaigns*cfg.Days)
	var drops []InjectedDrop

	for cid := int64(1); cid <= int64(cfg.Campaigns); cid++ {
		p := drawProfile(rng)
		name := fmt.Sprintf("Campaign %d", cid)

		for d := 0; d < cfg.Days; d++ {
			seasonal := 1 + 0.2*math.Sin(2*math.Pi*float64(d)/7)

			impressions := int64(p.baseImpressions*seasonal + rng.NormFloat64()*p.baseImpressions*0.08)
			if impressions < 1000 {
				impressions = 1000
			}
			// rates, cost-per-click and order value are perturbed per day but
			// floored so noise alone never produces a degenerate zero day
			clicks := int64(float64(impressions) * math.Max(0.005, p.clickRate+rng.NormFloat64()*0.01))
			conversions := int64(float64(clicks) * math.Max(0.01, p.convRate+rng.NormFloat64()*0.02))
			cost := domain.Round2(float64(clicks) * math.Max(0.1, p.costPerClick+rng.NormFloat64()*0.15))
			revenue := domain.Round2(float64(conversions) * math.Max(5, p.orderValue+rng.NormFloat64()*5))

			records = append(records, domain.DayRecord{
				Date:        start.AddDate(0, 0, d),
				CampaignID:  cid,
				Name:        name,
				Impressions: impressions,
				Clicks:      clicks,
				Conversions: conversions,
				Cost:        cost,
				Revenue:     revenue,
			})
		}

		// collapse traffic on two distinct days in the middle-to-late third
		campaignStart := len(records) - cfg.Days
		for _, d := range pickDropDays(rng, cfg.Days/3, cfg.Days-2) {
			rec := &records[campaignStart+d]
			rec.Clicks = max(1, rec.Clicks/3)
			rec.Conversions = rec.Conversions / 3
			rec.Revenue = domain.Round2(rec.Revenue * 0.35)
			drops = append(drops, InjectedDrop{CampaignID: cid, Date: rec.Date})
		}
	}
	return records, drops, nil
}

// pickDropDays draws up to two distinct day indexes from [lo, hi) without
// replacement. Very short series can leave fewer than two candidates; the
// drop count degrades instead of failing.
func pickDropDays(rng *rand.Rand, lo, hi int) []int {
	n := hi - lo
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []int{lo}
	}
	first := lo + rng.Intn(n)
	second := lo + rng.Intn(n-1)
	if second >= first {
		second++
	}
	return []int{first, second}
}
