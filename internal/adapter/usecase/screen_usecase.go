package usecase

import (
	"context"
	"time"

	"canopy-ads/internal/core/domain"
	"canopy-ads/internal/core/port"
	"canopy-ads/internal/core/targeting"
)

// ScreenUseCase serves screen discovery for the campaign wizard. It
// fetches ACTIVE screens with their committed bookings and runs the
// targeting engine's eligibility filter over them.
type ScreenUseCase struct {
	repo port.ScreenRepository

	// maxBookings is the per-screen concurrent booking capacity.
	maxBookings int
}

// NewScreenUseCase creates the usecase. maxBookings <= 0 selects the
// engine default.
func NewScreenUseCase(repo port.ScreenRepository, maxBookings int) *ScreenUseCase {
	if maxBookings <= 0 {
		maxBookings = targeting.DefaultMaxBookings
	}
	return &ScreenUseCase{repo: repo, maxBookings: maxBookings}
}

// ListAvailable returns bookable screens for the query. Zero eligible
// screens is a valid empty result, never an error.
func (u *ScreenUseCase) ListAvailable(ctx context.Context, q port.ScreenQuery) ([]domain.Screen, error) {
	asOf := q.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	screens, err := u.repo.ListByStatus(ctx, domain.ScreenActive, asOf)
	if err != nil {
		return nil, err
	}

	var center *targeting.Point
	if q.CenterLat != nil && q.CenterLng != nil {
		center = &targeting.Point{Lat: *q.CenterLat, Lng: *q.CenterLng}
	}
	return targeting.FilterEligibleScreens(screens, center, q.RadiusKm, asOf, u.maxBookings), nil
}
