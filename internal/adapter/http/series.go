package httpadapter

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// generateRequest is the body of POST /series/generate. Campaigns and Days
// fall back to the configured simulation defaults when omitted; a zero or
// missing Seed produces a time-seeded (non-reproducible) run.
type generateRequest struct {
	Campaigns int    `json:"campaigns"`
	Days      int    `json:"days"`
	Seed      int64  `json:"seed"`
	StartDate string `json:"start_date"` // YYYY-MM-DD, optional
}

// handleGenerate synthesises a metrics table, stores it and returns the run
// summary. Invalid parameters produce HTTP 400, internal failures HTTP 500.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req := port.GenerateReq{
		Campaigns: body.Campaigns,
		Days:      body.Days,
		Seed:      body.Seed,
	}
	if req.Campaigns == 0 {
		req.Campaigns = h.sim.Campaigns
	}
	if req.Days == 0 {
		req.Days = h.sim.Days
	}
	if body.StartDate != "" {
		start, err := time.Parse(time.DateOnly, body.StartDate)
		if err != nil {
			http.Error(w, "invalid 'start_date', want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		req.StartDate = start
	}

	resp, err := h.svc.GenerateSeries(r.Context(), req)
	if err != nil {
		h.writeError(w, "generate series error", err)
		return
	}
	h.respondJSON(w, resp)
}

// handleListSeries returns stored records matching the optional
// `campaign_id`, `from` and `to` (YYYY-MM-DD) query parameters. With
// `format=csv` the table is written as CSV instead of JSON.
func (h *Handler) handleListSeries(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSeriesFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	records, err := h.svc.ListSeries(r.Context(), filter)
	if err != nil {
		h.writeError(w, "list series error", err)
		return
	}
	if r.URL.Query().Get("format") == "csv" {
		h.writeSeriesCSV(w, records)
		return
	}
	h.respondJSON(w, records)
}

// handleFeatures returns lag-1 feature rows derived from the stored series,
// as JSON or CSV. These rows are the input contract for external
// forecasting models.
func (h *Handler) handleFeatures(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSeriesFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rows, err := h.svc.LagFeatures(r.Context(), filter)
	if err != nil {
		h.writeError(w, "lag features error", err)
		return
	}
	if r.URL.Query().Get("format") == "csv" {
		cw := csv.NewWriter(w)
		w.Header().Set("Content-Type", "text/csv")
		_ = cw.Write([]string{"date", "campaign_id", "clicks_lag1", "impressions_lag1", "cost_lag1", "revenue_lag1", "conversions"})
		for _, row := range rows {
			_ = cw.Write([]string{
				row.Date.Format(time.DateOnly),
				strconv.FormatInt(row.CampaignID, 10),
				strconv.FormatInt(row.ClicksLag1, 10),
				strconv.FormatInt(row.ImpressionsLag1, 10),
				strconv.FormatFloat(row.CostLag1, 'f', 2, 64),
				strconv.FormatFloat(row.RevenueLag1, 'f', 2, 64),
				strconv.FormatInt(row.Conversions, 10),
			})
		}
		cw.Flush()
		if err = cw.Error(); err != nil {
			h.logger.Error("write csv error", slog.Any("error", err))
		}
		return
	}
	h.respondJSON(w, rows)
}

func parseSeriesFilter(q url.Values) (port.SeriesFilter, error) {
	var f port.SeriesFilter
	if cid := q.Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			return f, errInvalidParam("campaign_id")
		}
		f.CampaignID = &id
	}
	if from := q.Get("from"); from != "" {
		t, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return f, errInvalidParam("from")
		}
		f.From = t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return f, errInvalidParam("to")
		}
		f.To = t
	}
	return f, nil
}

type errInvalidParam string

func (e errInvalidParam) Error() string {
	return "invalid '" + string(e) + "' parameter, want YYYY-MM-DD or integer"
}

func (h *Handler) writeSeriesCSV(w http.ResponseWriter, records []domain.DayRecord) {
	w.Header().Set("Content-Type", "text/csv")
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"date", "campaign_id", "name", "impressions", "clicks", "conversions", "cost", "revenue"})
	for _, rec := range records {
		_ = cw.Write([]string{
			rec.Date.Format(time.DateOnly),
			strconv.FormatInt(rec.CampaignID, 10),
			rec.Name,
			strconv.FormatInt(rec.Impressions, 10),
			strconv.FormatInt(rec.Clicks, 10),
			strconv.FormatInt(rec.Conversions, 10),
			strconv.FormatFloat(rec.Cost, 'f', 2, 64),
			strconv.FormatFloat(rec.Revenue, 'f', 2, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("write csv error", slog.Any("error", err))
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
