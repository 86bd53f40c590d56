package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"canopy-ads/internal/core/domain"
	"canopy-ads/internal/core/port"
)

// handleCreateCampaign creates a DRAFT campaign for the caller.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	c, err := h.campaigns.Create(r.Context(), port.CreateCampaignReq{
		UserID:         userID(r),
		Name:           req.Name,
		Description:    req.Description,
		Budget:         req.Budget,
		TargetLocation: req.TargetLocation,
		TargetRadius:   req.TargetRadius,
		Creative:       req.Creative,
		TargetAudience: req.TargetAudience,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.metrics.CampaignsCreatedTotal.Inc()
	h.respondJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleListCampaigns returns the caller's campaigns.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.campaigns.List(r.Context(), userID(r))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(list))
	for i := range list {
		out = append(out, toCampaignResponse(&list[i]))
	}
	h.respondJSON(w, http.StatusOK, out)
}

// handleGetCampaign returns one owned campaign.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"), userID(r))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleUpdateCampaign applies a partial update. Absent fields are left
// unchanged; a status field must name a valid owner transition.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req updateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	update := port.UpdateCampaignReq{
		Name:           req.Name,
		Description:    req.Description,
		Budget:         req.Budget,
		TargetLocation: req.TargetLocation,
		TargetRadius:   req.TargetRadius,
		Creative:       req.Creative,
		TargetAudience: req.TargetAudience,
	}
	if req.Status != nil {
		status := domain.CampaignStatus(*req.Status)
		switch status {
		case domain.CampaignDraft, domain.CampaignActive, domain.CampaignPaused, domain.CampaignCompleted:
			update.Status = &status
		default:
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
	}

	c, err := h.campaigns.Update(r.Context(), chi.URLParam(r, "id"), userID(r), update)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleDeleteCampaign removes an owned campaign.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Delete(r.Context(), chi.URLParam(r, "id"), userID(r)); err != nil {
		h.respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignMetrics returns dashboard metrics for an owned campaign.
func (h *Handler) handleCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.campaigns.MetricsFor(r.Context(), chi.URLParam(r, "id"), userID(r))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, metricsResponse{
		Impressions: m.Impressions,
		Reach:       m.Reach,
		Spend:       m.Spend,
		CPM:         m.CPM,
		Synthesized: m.Synthesized,
	})
}

// handleBookScreen books a screen for an owned campaign.
func (h *Handler) handleBookScreen(w http.ResponseWriter, r *http.Request) {
	var req bookScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	b, err := h.campaigns.BookScreen(r.Context(), port.BookScreenReq{
		UserID:     userID(r),
		CampaignID: chi.URLParam(r, "id"),
		ScreenID:   req.ScreenID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.metrics.BookingsCreatedTotal.Inc()
	h.respondJSON(w, http.StatusCreated, bookingResponse{
		ID:         b.ID,
		ScreenID:   b.ScreenID,
		CampaignID: b.CampaignID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	})
}
