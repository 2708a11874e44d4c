package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// InsightRepository implements port.InsightRepository using pgxpool for
// PostgreSQL.
type InsightRepository struct {
	pool *pgxpool.Pool
}

// NewInsightRepository returns a new repository instance.
func NewInsightRepository(pool *pgxpool.Pool) *InsightRepository {
	return &InsightRepository{pool: pool}
}

// SaveSeries upserts a table of campaign-day records in a single batch.
// Re-generating a series for the same campaigns and dates overwrites the
// previous rows instead of duplicating them.
func (r *InsightRepository) SaveSeries(ctx context.Context, records []domain.DayRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`INSERT INTO campaign_daily_metrics
    (date, campaign_id, name, impressions, clicks, conversions, cost, revenue)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (campaign_id, date) DO UPDATE SET
    name = EXCLUDED.name,
    impressions = EXCLUDED.impressions,
    clicks = EXCLUDED.clicks,
    conversions = EXCLUDED.conversions,
    cost = EXCLUDED.cost,
    revenue = EXCLUDED.revenue`,
			rec.Date, rec.CampaignID, rec.Name, rec.Impressions, rec.Clicks,
			rec.Conversions, rec.Cost, rec.Revenue)
	}
	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return br.Close()
}

// ListSeries returns stored records matching the filter, ordered by
// (campaign id, date) so rolling computations can consume them directly.
func (r *InsightRepository) ListSeries(ctx context.Context, f port.SeriesFilter) ([]domain.DayRecord, error) {
	query := `SELECT date, campaign_id, name, impressions, clicks, conversions, cost, revenue
FROM campaign_daily_metrics WHERE true`
	var args []interface{}
	if f.CampaignID != nil {
		args = append(args, *f.CampaignID)
		query += fmt.Sprintf(" AND campaign_id = $%d", len(args))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY campaign_id, date"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DayRecord, error) {
		var rec domain.DayRecord
		err := row.Scan(
			&rec.Date,
			&rec.CampaignID,
			&rec.Name,
			&rec.Impressions,
			&rec.Clicks,
			&rec.Conversions,
			&rec.Cost,
			&rec.Revenue,
		)
		rec.Date = domain.Day(rec.Date)
		return rec, err
	})
}

// SaveAlerts stores the alerts of one detection run.
func (r *InsightRepository) SaveAlerts(ctx context.Context, runID string, alerts []domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range alerts {
		batch.Queue(`INSERT INTO drop_alerts (run_id, date, campaign_id, name, reason)
VALUES ($1,$2,$3,$4,$5)`,
			runID, a.Date, a.CampaignID, a.Name, a.Reason)
	}
	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range alerts {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return br.Close()
}

// SaveRecommendation stores one budget recommendation. The prioritize and
// adjust/pause lists are kept as JSONB documents; they are read back whole,
// never queried by field.
func (r *InsightRepository) SaveRecommendation(ctx context.Context, runID string, rec domain.Recommendation) error {
	prioritize, err := json.Marshal(rec.Prioritize)
	if err != nil {
		return err
	}
	adjust, err := json.Marshal(rec.AdjustOrPause)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO budget_recommendations
    (run_id, reference_date, heuristic, total_budget, prioritize, adjust_or_pause, created_at)
VALUES ($1,$2,$3,$4,$5,$6,now())`,
		runID, rec.ReferenceDate, rec.Heuristic, rec.TotalBudget, prioritize, adjust)
	return err
}
