// Package features derives model-ready feature rows from campaign-day
// metrics. The rows are consumed by external forecasting or classification
// models; no model training or prediction happens in this module.
package features

import (
	"time"

	"adpulse/internal/core/domain"
)

// Row pairs a campaign-day's conversions (the prediction target) with the
// previous day's delivery metrics (the predictors).
type Row struct {
	Date            time.Time `json:"date"`
	CampaignID      int64     `json:"campaign_id"`
	ClicksLag1      int64     `json:"clicks_lag1"`
	ImpressionsLag1 int64     `json:"impressions_lag1"`
	CostLag1        float64   `json:"cost_lag1"`
	RevenueLag1     float64   `json:"revenue_lag1"`
	Conversions     int64     `json:"conversions"`
}

// Lag1 builds one feature row per campaign-day that has a previous day in
// the same campaign; each campaign's first day is dropped. The input is
// copied and re-sorted internally, never mutated.
func Lag1(records []domain.DayRecord) []Row {
	sorted := make([]domain.DayRecord, len(records))
	copy(sorted, records)
	domain.SortByCampaignDate(sorted)

	rows := make([]Row, 0, len(sorted))
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.CampaignID != cur.CampaignID {
			continue
		}
		rows = append(rows, Row{
			Date:            cur.Date,
			CampaignID:      cur.CampaignID,
			ClicksLag1:      prev.Clicks,
			ImpressionsLag1: prev.Impressions,
			CostLag1:        prev.Cost,
			RevenueLag1:     prev.Revenue,
			Conversions:     cur.Conversions,
		})
	}
	return rows
}
