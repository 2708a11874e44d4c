package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"adpulse/internal/core/port"
)

// detectRequest is the body of POST /alerts/detect. Window, drop fraction
// and method fall back to the detector defaults (7, 0.3, "average") when
// omitted. The optional filter fields restrict which stored records the
// detection runs over.
type detectRequest struct {
	Window       int     `json:"window"`
	DropFraction float64 `json:"drop_fraction"`
	Method       string  `json:"method"`
	CampaignID   *int64  `json:"campaign_id"`
	From         string  `json:"from"` // YYYY-MM-DD, optional
	To           string  `json:"to"`
}

// handleDetect runs rolling drop detection over the stored series and
// returns the persisted run id plus the alert list. An empty alert list is
// a normal response, not an error.
func (h *Handler) handleDetect(w http.ResponseWriter, r *http.Request) {
	var body detectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req := port.DetectReq{
		Window:       body.Window,
		DropFraction: body.DropFraction,
		Method:       body.Method,
	}
	req.Filter.CampaignID = body.CampaignID
	if body.From != "" {
		t, err := time.Parse(time.DateOnly, body.From)
		if err != nil {
			http.Error(w, "invalid 'from', want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		req.Filter.From = t
	}
	if body.To != "" {
		t, err := time.Parse(time.DateOnly, body.To)
		if err != nil {
			http.Error(w, "invalid 'to', want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		req.Filter.To = t
	}

	resp, err := h.svc.DetectDrops(r.Context(), req)
	if err != nil {
		h.writeError(w, "detect drops error", err)
		return
	}
	h.respondJSON(w, resp)
}
