package targeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"canopy-ads/internal/core/domain"
)

func activeScreen(id int64, lat, lng float64) domain.Screen {
	return domain.Screen{
		ID:        id,
		Latitude:  lat,
		Longitude: lng,
		Status:    domain.ScreenActive,
	}
}

func TestBoundingBoxContainsCenter(t *testing.T) {
	center := Point{Lat: 51.5074, Lng: -0.1276}
	for _, radius := range []float64{0.1, 1, 5, 100} {
		box := NewBoundingBox(center, radius)
		assert.True(t, box.Contains(center.Lat, center.Lng), "radius %v", radius)
	}
}

// Regression fixture for the bounding-box approximation: a screen ~1.1km
// from the center is still inside the 1km box because the box
// over-includes its corners. Changing the geo test to a true great-circle
// distance would flip this assertion.
func TestBoundingBoxOverInclusion(t *testing.T) {
	box := NewBoundingBox(Point{Lat: 51.5074, Lng: -0.1276}, 1)
	assert.True(t, box.Contains(51.5154, -0.1419))
}

func TestBoundingBoxExcludesDistantPoint(t *testing.T) {
	box := NewBoundingBox(Point{Lat: 51.5074, Lng: -0.1276}, 1)

	// Croydon, ~15km south.
	assert.False(t, box.Contains(51.3762, -0.0982))
	// Same latitude, well outside the longitude span.
	assert.False(t, box.Contains(51.5074, -0.5))
}

func TestBoundingBoxAtPoleSkipsLongitude(t *testing.T) {
	box := NewBoundingBox(Point{Lat: 90, Lng: 0}, 10)

	assert.True(t, box.Contains(89.95, 179))
	assert.True(t, box.Contains(89.95, -179))
	assert.False(t, box.Contains(89.0, 0))
}

func TestFilterEligibleScreens(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	center := Point{Lat: 51.5074, Lng: -0.1276}

	inactive := activeScreen(3, 51.5074, -0.1276)
	inactive.Status = domain.ScreenInactive

	screens := []domain.Screen{
		activeScreen(1, 51.5154, -0.1419), // Oxford Street, inside box
		activeScreen(2, 51.3762, -0.0982), // Croydon, outside
		inactive,                          // at the center but INACTIVE
	}

	got := FilterEligibleScreens(screens, &center, 1, now, DefaultMaxBookings)
	if assert.Len(t, got, 1) {
		assert.Equal(t, int64(1), got[0].ID)
	}
}

func TestFilterEligibleScreensNoRadius(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	screens := []domain.Screen{
		activeScreen(1, 51.5154, -0.1419),
		activeScreen(2, 55.9533, -3.1883), // Edinburgh
	}

	// No center: every ACTIVE screen is a candidate.
	got := FilterEligibleScreens(screens, nil, 0, now, DefaultMaxBookings)
	assert.Len(t, got, 2)

	// Center but non-positive radius: geo filtering is skipped too.
	center := Point{Lat: 51.5074, Lng: -0.1276}
	got = FilterEligibleScreens(screens, &center, -1, now, DefaultMaxBookings)
	assert.Len(t, got, 2)
}

func TestFilterEligibleScreensPreservesOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	screens := []domain.Screen{
		activeScreen(5, 51.51, -0.13),
		activeScreen(2, 51.51, -0.12),
		activeScreen(9, 51.50, -0.13),
	}

	got := FilterEligibleScreens(screens, nil, 0, now, DefaultMaxBookings)
	ids := make([]int64, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{5, 2, 9}, ids)
}
