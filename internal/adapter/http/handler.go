package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"canopy-ads/internal/core/port"
	"canopy-ads/internal/metrics"
)

// userIDKey is the context key carrying the authenticated user id.
type userIDKey struct{}

// Handler is the inbound HTTP adapter. It exposes the public API under
// /api/v1, the Prometheus scrape endpoint and a liveness probe, and maps
// domain errors onto HTTP status codes.
type Handler struct {
	screens   port.ScreenUseCase
	campaigns port.CampaignUseCase
	logger    *slog.Logger
	metrics   *metrics.Metrics
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(screens port.ScreenUseCase, campaigns port.CampaignUseCase, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{screens: screens, campaigns: campaigns, logger: logger, metrics: m}
	r := chi.NewRouter()
	r.Use(m.Middleware)

	r.Route("/api/v1", func(r chi.Router) {
		// the webhook authenticates by signature, not by user
		r.Post("/webhooks/payment", h.handlePaymentWebhook)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)

			r.Get("/screens", h.handleListScreens)

			r.Route("/campaigns", func(r chi.Router) {
				r.Post("/", h.handleCreateCampaign)
				r.Get("/", h.handleListCampaigns)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetCampaign)
					r.Put("/", h.handleUpdateCampaign)
					r.Delete("/", h.handleDeleteCampaign)
					r.Get("/metrics", h.handleCampaignMetrics)
					r.Post("/bookings", h.handleBookScreen)
				})
			})

			r.Post("/targeting/recommendations", h.handleTargetingRecommendations)
			r.Post("/creative/generate", h.handleGenerateCreative)
			r.Post("/payments/intent", h.handleCreatePaymentIntent)
		})
	})

	r.Get("/metrics", m.Handler().ServeHTTP)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requireUser resolves the caller's identity from the X-User-ID header.
// Session management lives at the edge; this service trusts the header
// the gateway injects.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID)))
	})
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey{}).(string)
	return id
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondErr maps domain errors to status codes. Not-found and foreign
// ownership are indistinguishable on purpose.
func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
