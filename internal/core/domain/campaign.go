package domain

import "time"

// CampaignStatus tracks the campaign lifecycle. A campaign is created in
// DRAFT, becomes ACTIVE on successful payment capture and may be toggled
// between ACTIVE and PAUSED by its owner.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "DRAFT"
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignPaused    CampaignStatus = "PAUSED"
	CampaignCompleted CampaignStatus = "COMPLETED"
)

// Campaign represents an advertising campaign. Budget and Spent are in
// currency units (pounds). Ownership is immutable: only the creating user
// may read, update or delete the campaign.
type Campaign struct {
	ID             string
	UserID         string
	Name           string
	Description    string
	Budget         float64
	Spent          float64
	TargetLocation string
	TargetRadius   float64 // kilometers
	Creative       AdCreative
	TargetAudience TargetAudience
	Status         CampaignStatus
	Impressions    int
	Reach          int
	StartDate      *time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AdCreative is the structured creative concept shown on a screen. It is
// stored as JSONB and decoded at the persistence edge; the core always
// works with the typed form.
type AdCreative struct {
	Headline            string `json:"headline"`
	Description         string `json:"description"`
	CTA                 string `json:"cta"`
	LogoConcept         string `json:"logoConcept,omitempty"`
	AnimationSuggestion string `json:"animationSuggestion,omitempty"`
	ColorScheme         string `json:"colorScheme,omitempty"`
	VisualElements      string `json:"visualElements,omitempty"`
}

// TargetAudience describes who the campaign is aimed at.
type TargetAudience struct {
	AgeRange    string   `json:"ageRange,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	Description string   `json:"description,omitempty"`
}

// PaymentStatus tracks a payment record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Payment records a charge raised for a campaign. ProviderID is the
// opaque handle returned by the payment collaborator.
type Payment struct {
	ID         string
	UserID     string
	CampaignID string
	Amount     float64
	Currency   string
	Status     PaymentStatus
	ProviderID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
