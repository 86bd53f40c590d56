package targeting

import (
	"math"
	"time"

	"canopy-ads/internal/core/domain"
)

// kmPerDegreeLat approximates one degree of latitude as 111 km.
const kmPerDegreeLat = 111.0

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// BoundingBox is the rectangular approximation of a circular geofence.
// It over-includes the corners of the box relative to a true geodesic
// circle; this trade-off is accepted in place of a proper geospatial
// query and pinned by a regression test.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64

	// allLng disables longitude filtering. Near the poles cos(lat)
	// approaches zero and the longitude span becomes unbounded, so the
	// box degenerates to a latitude band.
	allLng bool
}

// NewBoundingBox builds the box around center for the given radius in
// kilometers. A radius <= 0 produces an empty box that contains only the
// center itself; callers normally skip geo filtering for that case.
func NewBoundingBox(center Point, radiusKm float64) BoundingBox {
	latRange := radiusKm / kmPerDegreeLat

	cosLat := math.Cos(center.Lat * math.Pi / 180)
	box := BoundingBox{
		MinLat: center.Lat - latRange,
		MaxLat: center.Lat + latRange,
	}
	if math.Abs(cosLat) <= 1e-9 {
		box.allLng = true
		return box
	}
	lngRange := radiusKm / (kmPerDegreeLat * cosLat)
	box.MinLng = center.Lng - lngRange
	box.MaxLng = center.Lng + lngRange
	return box
}

// Contains reports whether the coordinate lies inside the box, bounds
// inclusive.
func (b BoundingBox) Contains(lat, lng float64) bool {
	if lat < b.MinLat || lat > b.MaxLat {
		return false
	}
	if b.allLng {
		return true
	}
	return lng >= b.MinLng && lng <= b.MaxLng
}

// FilterEligibleScreens selects screens a campaign may book: ACTIVE
// status, inside the geofence (skipped when center is nil or radius <= 0)
// and below booking capacity for the window starting at asOf. Input order
// is preserved and an empty result is valid, not an error.
func FilterEligibleScreens(screens []domain.Screen, center *Point, radiusKm float64, asOf time.Time, maxBookings int) []domain.Screen {
	var box BoundingBox
	useGeo := center != nil && radiusKm > 0
	if useGeo {
		box = NewBoundingBox(*center, radiusKm)
	}
	window := Interval{Start: asOf}

	eligible := make([]domain.Screen, 0, len(screens))
	for _, s := range screens {
		if s.Status != domain.ScreenActive {
			continue
		}
		if useGeo && !box.Contains(s.Latitude, s.Longitude) {
			continue
		}
		if !HasCapacity(s, window, maxBookings) {
			continue
		}
		eligible = append(eligible, s)
	}
	return eligible
}
