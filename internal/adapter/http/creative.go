package httpadapter

import (
	"encoding/json"
	"net/http"

	"canopy-ads/internal/core/port"
)

// handleGenerateCreative produces an ad concept for the campaign wizard.
func (h *Handler) handleGenerateCreative(w http.ResponseWriter, r *http.Request) {
	var req creativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	creative, err := h.campaigns.GenerateCreative(r.Context(), port.CreativeReq{
		Prompt:       req.Prompt,
		BusinessType: req.BusinessType,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, creative)
}
