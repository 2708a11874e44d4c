package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"adpulse/internal/core/port"
)

// recommendRequest is the body of POST /recommendations. ReferenceDate is
// optional; when omitted the latest stored date is used. Heuristic defaults
// to "efficiency".
type recommendRequest struct {
	ReferenceDate string  `json:"reference_date"` // YYYY-MM-DD, optional
	TopK          int     `json:"top_k"`
	TotalBudget   float64 `json:"total_budget"`
	Heuristic     string  `json:"heuristic"`
}

// handleRecommend produces a greedy budget recommendation from the stored
// series. Non-positive top-k or budget produce HTTP 400; a reference date
// with no records yields a recommendation with empty lists.
func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var body recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req := port.RecommendReq{
		TopK:        body.TopK,
		TotalBudget: body.TotalBudget,
		Heuristic:   body.Heuristic,
	}
	if body.ReferenceDate != "" {
		t, err := time.Parse(time.DateOnly, body.ReferenceDate)
		if err != nil {
			http.Error(w, "invalid 'reference_date', want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		req.ReferenceDate = t
	}

	resp, err := h.svc.RecommendBudget(r.Context(), req)
	if err != nil {
		h.writeError(w, "recommend budget error", err)
		return
	}
	h.respondJSON(w, resp)
}
