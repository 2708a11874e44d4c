package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpulse/internal/config/configs"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds an InsightUseCase to execute business logic, a logger for
// structured logging and the default simulation parameters applied when a
// generate request leaves fields unset. Routes are registered on a
// chi.Router for convenient method handling.
type Handler struct {
	svc    port.InsightUseCase
	logger *slog.Logger
	sim    configs.Sim
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.InsightUseCase, logger *slog.Logger, sim configs.Sim) *Handler {
	h := &Handler{svc: svc, logger: logger, sim: sim}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/series/generate", h.handleGenerate)
		r.Get("/series", h.handleListSeries)
		r.Get("/series/features", h.handleFeatures)
		r.Post("/alerts/detect", h.handleDetect)
		r.Post("/recommendations", h.handleRecommend)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// configErrors are the domain sentinels that map to HTTP 400. Everything
// else coming out of the usecase is treated as internal.
var configErrors = []error{
	domain.ErrCampaignCount,
	domain.ErrDayCount,
	domain.ErrWindowSize,
	domain.ErrDropFraction,
	domain.ErrUnknownMethod,
	domain.ErrTopK,
	domain.ErrTotalBudget,
	domain.ErrUnknownHeuristic,
}

// writeError maps a usecase error onto an HTTP status and logs internal
// failures.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	for _, ce := range configErrors {
		if errors.Is(err, ce) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	h.logger.Error(op, slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
