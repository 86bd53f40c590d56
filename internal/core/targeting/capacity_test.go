package targeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"canopy-ads/internal/core/domain"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func booking(start, end time.Time) domain.Booking {
	return domain.Booking{StartDate: start, EndDate: end}
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{day(1), day(5)}, Interval{day(10), day(15)}, false},
		{"touching half-open", Interval{day(1), day(5)}, Interval{day(5), day(10)}, false},
		{"overlapping", Interval{day(1), day(7)}, Interval{day(5), day(10)}, true},
		{"contained", Interval{day(1), day(10)}, Interval{day(3), day(5)}, true},
		{"unbounded window", Interval{Start: day(5)}, Interval{day(1), day(6)}, true},
		{"unbounded window past booking", Interval{Start: day(10)}, Interval{day(1), day(6)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestHasCapacityBoundary(t *testing.T) {
	window := Interval{Start: day(10)}

	two := domain.Screen{Bookings: []domain.Booking{
		booking(day(1), day(30)),
		booking(day(5), day(25)),
	}}
	assert.True(t, HasCapacity(two, window, 3))

	three := domain.Screen{Bookings: []domain.Booking{
		booking(day(1), day(30)),
		booking(day(5), day(25)),
		booking(day(8), day(20)),
	}}
	assert.False(t, HasCapacity(three, window, 3))
}

func TestHasCapacityIgnoresExpiredBookings(t *testing.T) {
	window := Interval{Start: day(10)}

	s := domain.Screen{Bookings: []domain.Booking{
		booking(day(1), day(5)),  // ended before the window
		booking(day(1), day(10)), // ends exactly at window start: [1,10) vs [10,∞)
		booking(day(1), day(30)),
		booking(day(2), day(30)),
	}}
	// Only the two bookings reaching past day 10 count.
	assert.True(t, HasCapacity(s, window, 3))
}

func TestHasCapacityDisjointBookingsDoNotStack(t *testing.T) {
	// Three bookings on the same screen, but across disjoint months; a
	// window overlapping only one of them sees a single booking.
	s := domain.Screen{Bookings: []domain.Booking{
		booking(day(1), day(5)),
		booking(day(10), day(15)),
		booking(day(20), day(25)),
	}}
	window := Interval{Start: day(11), End: day(12)}
	assert.True(t, HasCapacity(s, window, 3))
}

func TestHasCapacityDefaultMax(t *testing.T) {
	s := domain.Screen{Bookings: []domain.Booking{
		booking(day(1), day(30)),
		booking(day(1), day(30)),
		booking(day(1), day(30)),
	}}
	// maxBookings <= 0 falls back to the default of 3.
	assert.False(t, HasCapacity(s, Interval{Start: day(10)}, 0))
}
