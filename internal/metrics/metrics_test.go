package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/campaigns/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// three requests collapse onto a single route-pattern series
	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/campaigns/{id}", "200"))
	assert.Equal(t, 3.0, got)
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.CampaignsCreatedTotal.Inc()
	// "processed" and "rejected" are the label values the webhook handler
	// emits.
	m.PaymentEventsTotal.WithLabelValues("processed").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "canopy_campaigns_created_total 1")
	assert.Contains(t, rec.Body.String(), `canopy_payment_events_total{status="processed"} 1`)
}
