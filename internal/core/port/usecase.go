package port

import (
	"context"
	"errors"
	"time"

	"canopy-ads/internal/core/domain"
)

// ErrInvalidInput marks a missing or malformed required field; the HTTP
// layer maps it to 400.
var ErrInvalidInput = errors.New("invalid input")

// ScreenQuery selects screens for a campaign. Center may be nil, in which
// case no geographic filtering is applied and every ACTIVE screen with
// spare capacity is a candidate.
type ScreenQuery struct {
	CenterLat *float64
	CenterLng *float64
	RadiusKm  float64
	AsOf      time.Time
}

// ScreenUseCase exposes screen discovery to the HTTP layer.
type ScreenUseCase interface {
	// ListAvailable returns ACTIVE screens inside the query geofence that
	// still have booking capacity, in stable repository order. An empty
	// slice is a valid result.
	ListAvailable(ctx context.Context, q ScreenQuery) ([]domain.Screen, error)
}

// CreateCampaignReq carries the campaign wizard's output.
type CreateCampaignReq struct {
	UserID         string
	Name           string
	Description    string
	Budget         float64
	TargetLocation string
	TargetRadius   float64
	Creative       domain.AdCreative
	TargetAudience domain.TargetAudience
}

// UpdateCampaignReq carries a partial campaign update. Nil fields are
// left untouched.
type UpdateCampaignReq struct {
	Name           *string
	Description    *string
	Budget         *float64
	TargetLocation *string
	TargetRadius   *float64
	Creative       *domain.AdCreative
	TargetAudience *domain.TargetAudience
	Status         *domain.CampaignStatus
}

// TargetingReq asks for targeting advice for a prospective campaign.
type TargetingReq struct {
	BusinessType string
	Location     string
	Budget       float64
	TargetRadius float64
}

// CreativeReq asks the text-generation collaborator for an ad concept.
type CreativeReq struct {
	Prompt       string
	BusinessType string
}

// PaymentIntentReq raises a charge for a campaign.
type PaymentIntentReq struct {
	UserID     string
	CampaignID string
	Amount     float64
	Currency   string
}

// BookScreenReq assigns a campaign to a screen for [StartDate, EndDate).
type BookScreenReq struct {
	UserID     string
	CampaignID string
	ScreenID   int64
	StartDate  time.Time
	EndDate    time.Time
}

// PaymentIntentResp is returned to the client for confirmation.
type PaymentIntentResp struct {
	PaymentID    string `json:"paymentId"`
	ClientSecret string `json:"clientSecret"`
}

// CampaignUseCase is the primary port into the campaign domain.
type CampaignUseCase interface {
	Create(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	Get(ctx context.Context, id, userID string) (*domain.Campaign, error)
	List(ctx context.Context, userID string) ([]domain.Campaign, error)
	Update(ctx context.Context, id, userID string, req UpdateCampaignReq) (*domain.Campaign, error)
	Delete(ctx context.Context, id, userID string) error

	// RecommendTargeting computes targeting advice. Pure and
	// deterministic; recomputed on every call.
	RecommendTargeting(ctx context.Context, req TargetingReq) (*domain.Recommendation, error)

	// GenerateCreative produces an ad concept, falling back to
	// deterministic template content when the collaborator is
	// unavailable. It never fails because of the collaborator.
	GenerateCreative(ctx context.Context, req CreativeReq) (*domain.AdCreative, error)

	// MetricsFor returns dashboard metrics for a campaign, synthesizing
	// stable placeholder values when no real analytics exist yet.
	MetricsFor(ctx context.Context, id, userID string) (*domain.CampaignMetrics, error)

	// BookScreen assigns an owned campaign to a screen for a half-open
	// date interval. Eligibility filtering is advisory and happens
	// before this write; the booking itself is not capacity-guarded.
	BookScreen(ctx context.Context, req BookScreenReq) (*domain.Booking, error)

	// CreatePaymentIntent records a pending payment and returns the
	// provider handle for client-side confirmation.
	CreatePaymentIntent(ctx context.Context, req PaymentIntentReq) (*PaymentIntentResp, error)

	// HandlePaymentEvent processes a verified provider callback. A
	// successful capture marks the payment completed and activates the
	// campaign.
	HandlePaymentEvent(ctx context.Context, payload []byte, signature string) error
}
