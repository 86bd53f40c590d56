package domain

import "time"

// ScreenStatus indicates whether a screen is available for campaigns.
type ScreenStatus string

const (
	ScreenActive   ScreenStatus = "ACTIVE"
	ScreenInactive ScreenStatus = "INACTIVE"
)

// Screen represents a taxi-top digital display. Coordinates are WGS84
// degrees; latitude must lie in [-90,90] and longitude in [-180,180],
// enforced at the persistence edge. Bookings holds the screen's active
// booking associations as of the query the screen was loaded for.
type Screen struct {
	ID         int64
	Name       string
	Location   string
	Latitude   float64
	Longitude  float64
	Width      int
	Height     int
	Resolution string
	Status     ScreenStatus
	Bookings   []Booking
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Booking links a campaign to a screen for the half-open date interval
// [StartDate, EndDate). A booking whose EndDate has passed no longer
// counts toward screen capacity.
type Booking struct {
	ID         int64
	ScreenID   int64
	CampaignID string
	StartDate  time.Time
	EndDate    time.Time
}
