package httpadapter

import (
	"encoding/json"
	"io"
	"net/http"

	"canopy-ads/internal/core/port"
)

// maxWebhookBody caps webhook payload reads at 1 MiB.
const maxWebhookBody = 1 << 20

// handleCreatePaymentIntent raises a charge for an owned campaign and
// returns the client-confirmable handle.
func (h *Handler) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	resp, err := h.campaigns.CreatePaymentIntent(r.Context(), port.PaymentIntentReq{
		UserID:     userID(r),
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		Currency:   req.Currency,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// handlePaymentWebhook applies a provider callback. The raw body is
// verified against the X-Webhook-Signature header before anything is
// decoded; bad signatures are 400 so the provider does not retry them.
func (h *Handler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}
	signature := r.Header.Get("X-Webhook-Signature")
	if signature == "" {
		h.metrics.PaymentEventsTotal.WithLabelValues("rejected").Inc()
		http.Error(w, "missing signature", http.StatusBadRequest)
		return
	}

	if err := h.campaigns.HandlePaymentEvent(r.Context(), payload, signature); err != nil {
		h.metrics.PaymentEventsTotal.WithLabelValues("rejected").Inc()
		h.respondErr(w, err)
		return
	}
	h.metrics.PaymentEventsTotal.WithLabelValues("processed").Inc()
	h.respondJSON(w, http.StatusOK, map[string]bool{"received": true})
}
