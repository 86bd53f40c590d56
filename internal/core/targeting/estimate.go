package targeting

import "math"

const (
	// DefaultCPM is the platform's flat price per thousand impressions
	// in currency units.
	DefaultCPM = 7.00

	// ReachFrequencyFactor converts impressions to estimated distinct
	// people reached. The implied frequency of ~3 exposures per person
	// is a business constant, not a measured value.
	ReachFrequencyFactor = 0.3
)

// EstimateImpressions converts a budget into an estimated impression
// count: round((budget / cpm) * 1000). A budget or CPM of zero or less
// yields zero impressions rather than an error.
func EstimateImpressions(budget, cpm float64) int {
	if budget <= 0 || cpm <= 0 {
		return 0
	}
	return int(math.Round(budget / cpm * 1000))
}

// EstimateReach derives people reached from raw impressions via
// ReachFrequencyFactor.
func EstimateReach(impressions int) int {
	if impressions <= 0 {
		return 0
	}
	return int(math.Round(float64(impressions) * ReachFrequencyFactor))
}
