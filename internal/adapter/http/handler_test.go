package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canopy-ads/internal/core/domain"
	"canopy-ads/internal/core/port"
	"canopy-ads/internal/core/port/mocks"
	"canopy-ads/internal/metrics"
)

type handlerMocks struct {
	screens   *mocks.MockScreenUseCase
	campaigns *mocks.MockCampaignUseCase
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	m := handlerMocks{
		screens:   mocks.NewMockScreenUseCase(t),
		campaigns: mocks.NewMockCampaignUseCase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(m.screens, m.campaigns, metrics.New(), logger)
	return h, m
}

func doRequest(h *Handler, method, target, user, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestMissingUserHeaderIsUnauthorized(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, target := range []string{
		"/api/v1/screens",
		"/api/v1/campaigns",
	} {
		rec := doRequest(h, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestListScreensParsesGeoQuery(t *testing.T) {
	h, m := newTestHandler(t)

	m.screens.EXPECT().
		ListAvailable(mock.Anything, mock.MatchedBy(func(q port.ScreenQuery) bool {
			return q.CenterLat != nil && *q.CenterLat == 51.5074 &&
				q.CenterLng != nil && *q.CenterLng == -0.1276 &&
				q.RadiusKm == 2
		})).
		Return([]domain.Screen{{ID: 1, Name: "Oxford Street Screen", Status: domain.ScreenActive}}, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/screens?lat=51.5074&lng=-0.1276&radius=2", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []screenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Oxford Street Screen", got[0].Name)
	assert.NotNil(t, got[0].Bookings, "bookings must encode as [], not null")
}

func TestListScreensRejectsBadGeoQuery(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, target := range []string{
		"/api/v1/screens?lat=51.5",              // lng missing
		"/api/v1/screens?lat=91&lng=0",          // lat out of range
		"/api/v1/screens?lat=51.5&lng=x",        // unparseable
		"/api/v1/screens?lat=51&lng=0&radius=0", // radius not positive
	} {
		rec := doRequest(h, http.MethodGet, target, "u1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestListScreensWithoutGeoReturnsAll(t *testing.T) {
	h, m := newTestHandler(t)

	m.screens.EXPECT().
		ListAvailable(mock.Anything, mock.MatchedBy(func(q port.ScreenQuery) bool {
			return q.CenterLat == nil && q.CenterLng == nil
		})).
		Return(nil, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/screens", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestCreateCampaign(t *testing.T) {
	h, m := newTestHandler(t)

	m.campaigns.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(req port.CreateCampaignReq) bool {
			return req.UserID == "u1" && req.Name == "Soho Launch" && req.Budget == 500
		})).
		Return(&domain.Campaign{ID: "c1", UserID: "u1", Name: "Soho Launch", Budget: 500, Status: domain.CampaignDraft}, nil)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns", "u1",
		`{"name":"Soho Launch","budget":500,"targetLocation":"Soho, London","targetRadius":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got campaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, domain.CampaignDraft, got.Status)
}

func TestCreateCampaignInvalidInputIs400(t *testing.T) {
	h, m := newTestHandler(t)

	m.campaigns.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil, port.ErrInvalidInput)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns", "u1", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCampaignNotFound(t *testing.T) {
	h, m := newTestHandler(t)

	m.campaigns.EXPECT().
		Get(mock.Anything, "c404", "u1").
		Return(nil, port.ErrNotFound)

	rec := doRequest(h, http.MethodGet, "/api/v1/campaigns/c404", "u1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCampaignRejectsUnknownStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPut, "/api/v1/campaigns/c1", "u1", `{"status":"LAUNCHED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCampaign(t *testing.T) {
	h, m := newTestHandler(t)

	m.campaigns.EXPECT().
		Delete(mock.Anything, "c1", "u1").
		Return(nil)

	rec := doRequest(h, http.MethodDelete, "/api/v1/campaigns/c1", "u1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCampaignMetricsEndpoint(t *testing.T) {
	h, m := newTestHandler(t)

	m.campaigns.EXPECT().
		MetricsFor(mock.Anything, "c1", "u1").
		Return(&domain.CampaignMetrics{Impressions: 4317, Reach: 1295, Spend: 30.22, CPM: 7, Synthesized: true}, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/campaigns/c1/metrics", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got metricsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 4317, got.Impressions)
	assert.True(t, got.Synthesized)
}

func TestBookScreenEndpoint(t *testing.T) {
	h, m := newTestHandler(t)

	m.campaigns.EXPECT().
		BookScreen(mock.Anything, mock.MatchedBy(func(req port.BookScreenReq) bool {
			return req.CampaignID == "c1" && req.UserID == "u1" && req.ScreenID == 3
		})).
		Return(&domain.Booking{ID: 7, ScreenID: 3, CampaignID: "c1"}, nil)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/c1/bookings", "u1",
		`{"screenId":3,"startDate":"2025-07-01T00:00:00Z","endDate":"2025-07-15T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got bookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
}

func TestTargetingRecommendationsEndpoint(t *testing.T) {
	h, m := newTestHandler(t)

	m.campaigns.EXPECT().
		RecommendTargeting(mock.Anything, port.TargetingReq{
			BusinessType: "Restaurant & Food",
			Location:     "Soho, London",
			Budget:       1500,
			TargetRadius: 2,
		}).
		Return(&domain.Recommendation{OptimalRadius: 2.2, BusinessType: "Restaurant & Food"}, nil)

	rec := doRequest(h, http.MethodPost, "/api/v1/targeting/recommendations", "u1",
		`{"businessType":"Restaurant & Food","location":"Soho, London","budget":1500,"targetRadius":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"optimalRadius":2.2`)
}

func TestPaymentWebhookNeedsSignature(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/webhooks/payment", "", `{"type":"payment.succeeded"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentWebhookPassesRawBody(t *testing.T) {
	h, m := newTestHandler(t)

	payload := `{"type":"payment.succeeded","intentId":"pi_1"}`
	m.campaigns.EXPECT().
		HandlePaymentEvent(mock.Anything, []byte(payload), "deadbeef").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", strings.NewReader(payload))
	req.Header.Set("X-Webhook-Signature", "deadbeef")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
