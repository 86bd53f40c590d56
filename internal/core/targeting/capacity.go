package targeting

import (
	"time"

	"canopy-ads/internal/core/domain"
)

// DefaultMaxBookings is the number of campaigns a screen can carry
// concurrently.
const DefaultMaxBookings = 3

// Interval is a half-open time range [Start, End). A zero End means the
// interval is unbounded on the right, which is how "currently or future
// committed" queries are expressed.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect:
// [a,b) and [c,d) overlap iff a < d and c < b.
func (i Interval) Overlaps(other Interval) bool {
	if !i.End.IsZero() && !other.Start.Before(i.End) {
		return false
	}
	if !other.End.IsZero() && !i.Start.Before(other.End) {
		return false
	}
	return true
}

// HasCapacity reports whether the screen can accept another booking for
// the given window. A screen is at capacity once maxBookings of its
// bookings overlap the window; bookings that ended at or before the
// window start never count. maxBookings <= 0 falls back to
// DefaultMaxBookings.
func HasCapacity(screen domain.Screen, window Interval, maxBookings int) bool {
	if maxBookings <= 0 {
		maxBookings = DefaultMaxBookings
	}
	overlapping := 0
	for _, b := range screen.Bookings {
		if window.Overlaps(Interval{Start: b.StartDate, End: b.EndDate}) {
			overlapping++
			if overlapping >= maxBookings {
				return false
			}
		}
	}
	return true
}
