package targeting

import (
	"math"
	"unicode/utf16"
)

// SeededMetric derives a stable pseudo-random integer in [min, max] from
// an entity identifier. It backfills dashboard metrics for campaigns with
// no recorded analytics: the same id always produces the same number, so
// reloads do not flicker, while different ids spread across the range.
//
// The hash is the classic JavaScript polynomial rolling hash over UTF-16
// code units with 32-bit signed wraparound: h = (h<<5) - h + c. The
// wraparound must be reproduced exactly for the output to stay bit
// identical with the web tier, hence the explicit int32 arithmetic. This
// is a presentation-layer placeholder, not a statistical sampler; no
// distribution guarantee is claimed beyond determinism.
func SeededMetric(id string, min, max int) int {
	if min > max {
		min, max = max, min
	}

	var h int32
	for _, c := range utf16.Encode([]rune(id)) {
		h = (h << 5) - h + int32(c)
	}

	// Widen before abs: -2^31 has no int32 counterpart.
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	normalized := float64(abs) / math.MaxInt32

	value := int(math.Floor(normalized*float64(max-min+1))) + min
	if value > max {
		// normalized can reach 1.0 when the hash is exactly MinInt32.
		value = max
	}
	return value
}
