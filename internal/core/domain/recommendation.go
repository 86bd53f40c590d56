package domain

import "time"

// CompetitorLocation is a nearby competitor entry in a targeting
// recommendation. Address and Distance are fabricated placeholder values,
// not geocoded data.
type CompetitorLocation struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Distance string `json:"distance"`
}

// TrafficRoute is a high-footfall route archetype.
type TrafficRoute struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Traffic string `json:"traffic"`
}

// Recommendation is the targeting advice produced for a campaign request.
// It is a pure function of its inputs, recomputed on every call and never
// persisted; the caller decides whether to cache it.
type Recommendation struct {
	OptimalRadius       float64              `json:"optimalRadius"`
	CompetitorLocations []CompetitorLocation `json:"competitorLocations"`
	HighFootfallRoutes  []TrafficRoute       `json:"highFootfallRoutes"`
	PeakHours           []string             `json:"peakHours"`
	Recommendations     []string             `json:"recommendations"`
	Location            string               `json:"location"`
	BusinessType        string               `json:"businessType"`
	Budget              float64              `json:"budget"`
	TargetRadius        float64              `json:"targetRadius"`
	GeneratedAt         time.Time            `json:"generatedAt"`
}

// CampaignMetrics holds the display numbers for a campaign dashboard.
// Synthesized is true when the values are seeded placeholders rather than
// recorded analytics.
type CampaignMetrics struct {
	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Spend       float64 `json:"spend"`
	CPM         float64 `json:"cpm"`
	Synthesized bool    `json:"synthesized"`
}
