package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"canopy-ads/internal/core/domain"
	"canopy-ads/internal/core/port"
	"canopy-ads/internal/core/targeting"
)

// CampaignUseCase implements the campaign business operations: CRUD with
// ownership scoping, targeting recommendations, creative generation,
// payment intents and webhook-driven activation, and dashboard metrics
// with seeded placeholders.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	screens   port.ScreenRepository
	payments  port.PaymentRepository
	provider  port.PaymentProvider
	creative  port.CreativeGenerator

	cpm      float64
	currency string
}

// NewCampaignUseCase wires the usecase. cpm <= 0 selects the platform's
// flat default; currency defaults to GBP.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	screens port.ScreenRepository,
	payments port.PaymentRepository,
	provider port.PaymentProvider,
	creative port.CreativeGenerator,
	cpm float64,
	currency string,
) *CampaignUseCase {
	if cpm <= 0 {
		cpm = targeting.DefaultCPM
	}
	if currency == "" {
		currency = "GBP"
	}
	return &CampaignUseCase{
		campaigns: campaigns,
		screens:   screens,
		payments:  payments,
		provider:  provider,
		creative:  creative,
		cpm:       cpm,
		currency:  currency,
	}
}

// Create stores a new DRAFT campaign owned by the requesting user.
func (u *CampaignUseCase) Create(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if req.UserID == "" || req.Name == "" || req.Budget <= 0 {
		return nil, fmt.Errorf("%w: user id, name and positive budget are required", port.ErrInvalidInput)
	}

	now := time.Now().UTC()
	c := &domain.Campaign{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		Name:           req.Name,
		Description:    req.Description,
		Budget:         req.Budget,
		TargetLocation: req.TargetLocation,
		TargetRadius:   req.TargetRadius,
		Creative:       req.Creative,
		TargetAudience: req.TargetAudience,
		Status:         domain.CampaignDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the campaign when owned by userID.
func (u *CampaignUseCase) Get(ctx context.Context, id, userID string) (*domain.Campaign, error) {
	return u.campaigns.GetByID(ctx, id, userID)
}

// List returns the user's campaigns, newest first (repository order).
func (u *CampaignUseCase) List(ctx context.Context, userID string) ([]domain.Campaign, error) {
	return u.campaigns.ListByUser(ctx, userID)
}

// Update applies a partial update to an owned campaign. Status changes
// are restricted to the owner-controlled transitions; activation from
// DRAFT happens only through payment capture.
func (u *CampaignUseCase) Update(ctx context.Context, id, userID string, req port.UpdateCampaignReq) (*domain.Campaign, error) {
	c, err := u.campaigns.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Budget != nil {
		if *req.Budget <= 0 {
			return nil, fmt.Errorf("%w: budget must be positive", port.ErrInvalidInput)
		}
		c.Budget = *req.Budget
	}
	if req.TargetLocation != nil {
		c.TargetLocation = *req.TargetLocation
	}
	if req.TargetRadius != nil {
		c.TargetRadius = *req.TargetRadius
	}
	if req.Creative != nil {
		c.Creative = *req.Creative
	}
	if req.TargetAudience != nil {
		c.TargetAudience = *req.TargetAudience
	}
	if req.Status != nil && *req.Status != c.Status {
		if !ownerTransitionAllowed(c.Status, *req.Status) {
			return nil, fmt.Errorf("%w: cannot change status %s -> %s", port.ErrInvalidInput, c.Status, *req.Status)
		}
		c.Status = *req.Status
	}
	c.UpdatedAt = time.Now().UTC()

	if err := u.campaigns.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ownerTransitionAllowed lists the status changes an owner may request
// directly: pausing and resuming a paid campaign, and ending it.
func ownerTransitionAllowed(from, to domain.CampaignStatus) bool {
	switch from {
	case domain.CampaignActive:
		return to == domain.CampaignPaused || to == domain.CampaignCompleted
	case domain.CampaignPaused:
		return to == domain.CampaignActive || to == domain.CampaignCompleted
	default:
		return false
	}
}

// Delete removes an owned campaign.
func (u *CampaignUseCase) Delete(ctx context.Context, id, userID string) error {
	return u.campaigns.Delete(ctx, id, userID)
}

// RecommendTargeting computes targeting advice for the request.
func (u *CampaignUseCase) RecommendTargeting(_ context.Context, req port.TargetingReq) (*domain.Recommendation, error) {
	if req.BusinessType == "" || req.Location == "" {
		return nil, fmt.Errorf("%w: businessType and location are required", port.ErrInvalidInput)
	}
	rec := targeting.Recommend(req.BusinessType, req.Location, req.Budget, req.TargetRadius)
	return &rec, nil
}

// GenerateCreative produces an ad concept via the text-generation
// collaborator. The collaborator degrades to template content itself, so
// an error here is an internal failure, not provider unavailability.
func (u *CampaignUseCase) GenerateCreative(ctx context.Context, req port.CreativeReq) (*domain.AdCreative, error) {
	if req.BusinessType == "" {
		return nil, fmt.Errorf("%w: businessType is required", port.ErrInvalidInput)
	}
	creative, err := u.creative.Generate(ctx, req.Prompt, req.BusinessType)
	if err != nil {
		return nil, err
	}
	return &creative, nil
}

// MetricsFor returns dashboard numbers for an owned campaign. Campaigns
// without recorded analytics get stable seeded placeholders so the same
// campaign shows the same figures on every reload.
func (u *CampaignUseCase) MetricsFor(ctx context.Context, id, userID string) (*domain.CampaignMetrics, error) {
	c, err := u.campaigns.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if c.Impressions > 0 {
		reach := c.Reach
		if reach == 0 {
			reach = targeting.EstimateReach(c.Impressions)
		}
		return &domain.CampaignMetrics{
			Impressions: c.Impressions,
			Reach:       reach,
			Spend:       c.Spent,
			CPM:         u.cpm,
			Synthesized: false,
		}, nil
	}

	impressions := targeting.SeededMetric(c.ID, 1000, 6000)
	return &domain.CampaignMetrics{
		Impressions: impressions,
		Reach:       targeting.EstimateReach(impressions),
		Spend:       math.Round(float64(impressions)*u.cpm/10) / 100, // impressions * CPM/1000, to the penny
		CPM:         u.cpm,
		Synthesized: true,
	}, nil
}

// BookScreen assigns an owned campaign to a screen. The interval is
// half-open and must be non-empty; ownership is checked first so foreign
// campaigns surface as not found.
func (u *CampaignUseCase) BookScreen(ctx context.Context, req port.BookScreenReq) (*domain.Booking, error) {
	if req.ScreenID <= 0 || req.StartDate.IsZero() || req.EndDate.IsZero() || !req.StartDate.Before(req.EndDate) {
		return nil, fmt.Errorf("%w: screenId and a non-empty [startDate, endDate) interval are required", port.ErrInvalidInput)
	}
	if _, err := u.campaigns.GetByID(ctx, req.CampaignID, req.UserID); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ScreenID:   req.ScreenID,
		CampaignID: req.CampaignID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if err := u.screens.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// CreatePaymentIntent records a pending payment for an owned campaign and
// returns the provider's client-confirmable handle.
func (u *CampaignUseCase) CreatePaymentIntent(ctx context.Context, req port.PaymentIntentReq) (*port.PaymentIntentResp, error) {
	if req.CampaignID == "" || req.Amount <= 0 {
		return nil, fmt.Errorf("%w: campaignId and positive amount are required", port.ErrInvalidInput)
	}
	if _, err := u.campaigns.GetByID(ctx, req.CampaignID, req.UserID); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = u.currency
	}

	paymentID := uuid.NewString()
	intent, err := u.provider.CreateIntent(ctx, port.IntentReq{
		AmountMinor: int64(math.Round(req.Amount * 100)),
		Currency:    currency,
		Metadata: map[string]string{
			"payment_id":  paymentID,
			"campaign_id": req.CampaignID,
			"user_id":     req.UserID,
		},
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Payment{
		ID:         paymentID,
		UserID:     req.UserID,
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		Currency:   currency,
		Status:     domain.PaymentPending,
		ProviderID: intent.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	return &port.PaymentIntentResp{
		PaymentID:    paymentID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// HandlePaymentEvent verifies and applies a provider callback. A
// successful capture completes the payment and activates the campaign
// with the capture time as its start date. Unknown event types are
// acknowledged without effect.
func (u *CampaignUseCase) HandlePaymentEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := u.provider.VerifyWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", port.ErrInvalidInput, err)
	}

	p, err := u.payments.GetByProviderID(ctx, event.IntentID)
	if err != nil {
		return err
	}

	switch event.Type {
	case port.PaymentSucceeded:
		if err := u.payments.SetStatus(ctx, p.ID, domain.PaymentCompleted); err != nil {
			return err
		}
		now := time.Now().UTC()
		return u.campaigns.UpdateStatus(ctx, p.CampaignID, p.UserID, domain.CampaignActive, &now)
	case port.PaymentFailedEv:
		return u.payments.SetStatus(ctx, p.ID, domain.PaymentFailed)
	default:
		return nil
	}
}
