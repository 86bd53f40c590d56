package httpadapter

import (
	"encoding/json"
	"net/http"

	"canopy-ads/internal/core/port"
)

// handleTargetingRecommendations computes targeting advice for a
// prospective campaign. The result is deterministic for identical input.
func (h *Handler) handleTargetingRecommendations(w http.ResponseWriter, r *http.Request) {
	var req targetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	rec, err := h.campaigns.RecommendTargeting(r.Context(), port.TargetingReq{
		BusinessType: req.BusinessType,
		Location:     req.Location,
		Budget:       req.Budget,
		TargetRadius: req.TargetRadius,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rec)
}
