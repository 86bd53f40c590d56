package httpadapter

import (
	"time"

	"canopy-ads/internal/core/domain"
)

// Wire types for the public API. The JSON shapes are camelCase and
// decoupled from the domain structs so persistence changes never leak
// into the contract.

type createCampaignRequest struct {
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Budget         float64               `json:"budget"`
	TargetLocation string                `json:"targetLocation"`
	TargetRadius   float64               `json:"targetRadius"`
	Creative       domain.AdCreative     `json:"creative"`
	TargetAudience domain.TargetAudience `json:"targetAudience"`
}

type updateCampaignRequest struct {
	Name           *string                `json:"name"`
	Description    *string                `json:"description"`
	Budget         *float64               `json:"budget"`
	TargetLocation *string                `json:"targetLocation"`
	TargetRadius   *float64               `json:"targetRadius"`
	Creative       *domain.AdCreative     `json:"creative"`
	TargetAudience *domain.TargetAudience `json:"targetAudience"`
	Status         *string                `json:"status"`
}

type targetingRequest struct {
	BusinessType string  `json:"businessType"`
	Location     string  `json:"location"`
	Budget       float64 `json:"budget"`
	TargetRadius float64 `json:"targetRadius"`
}

type creativeRequest struct {
	Prompt       string `json:"prompt"`
	BusinessType string `json:"businessType"`
}

type paymentIntentRequest struct {
	CampaignID string  `json:"campaignId"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

type bookScreenRequest struct {
	ScreenID  int64     `json:"screenId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type campaignResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description,omitempty"`
	Budget         float64               `json:"budget"`
	Spent          float64               `json:"spent"`
	TargetLocation string                `json:"targetLocation,omitempty"`
	TargetRadius   float64               `json:"targetRadius,omitempty"`
	Creative       domain.AdCreative     `json:"creative"`
	TargetAudience domain.TargetAudience `json:"targetAudience"`
	Status         domain.CampaignStatus `json:"status"`
	Impressions    int                   `json:"impressions"`
	Reach          int                   `json:"reach"`
	StartDate      *time.Time            `json:"startDate,omitempty"`
	EndDate        *time.Time            `json:"endDate,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Budget:         c.Budget,
		Spent:          c.Spent,
		TargetLocation: c.TargetLocation,
		TargetRadius:   c.TargetRadius,
		Creative:       c.Creative,
		TargetAudience: c.TargetAudience,
		Status:         c.Status,
		Impressions:    c.Impressions,
		Reach:          c.Reach,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type bookingResponse struct {
	ID         int64     `json:"id"`
	ScreenID   int64     `json:"screenId"`
	CampaignID string    `json:"campaignId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
}

type screenResponse struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Location   string              `json:"location"`
	Latitude   float64             `json:"latitude"`
	Longitude  float64             `json:"longitude"`
	Width      int                 `json:"width"`
	Height     int                 `json:"height"`
	Resolution string              `json:"resolution"`
	Status     domain.ScreenStatus `json:"status"`
	Bookings   []bookingResponse   `json:"bookings"`
}

func toScreenResponses(screens []domain.Screen) []screenResponse {
	out := make([]screenResponse, 0, len(screens))
	for _, s := range screens {
		resp := screenResponse{
			ID:         s.ID,
			Name:       s.Name,
			Location:   s.Location,
			Latitude:   s.Latitude,
			Longitude:  s.Longitude,
			Width:      s.Width,
			Height:     s.Height,
			Resolution: s.Resolution,
			Status:     s.Status,
			Bookings:   make([]bookingResponse, 0, len(s.Bookings)),
		}
		for _, b := range s.Bookings {
			resp.Bookings = append(resp.Bookings, bookingResponse{
				ID:         b.ID,
				ScreenID:   b.ScreenID,
				CampaignID: b.CampaignID,
				StartDate:  b.StartDate,
				EndDate:    b.EndDate,
			})
		}
		out = append(out, resp)
	}
	return out
}

type metricsResponse struct {
	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Spend       float64 `json:"spend"`
	CPM         float64 `json:"cpm"`
	Synthesized bool    `json:"synthesized"`
}
