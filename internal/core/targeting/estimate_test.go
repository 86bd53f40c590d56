package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateImpressionsGolden(t *testing.T) {
	// round((100 / 7.00) * 1000) = 14286
	assert.Equal(t, 14286, EstimateImpressions(100, DefaultCPM))
	assert.Equal(t, 4286, EstimateReach(14286))
}

func TestEstimateImpressionsDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0, EstimateImpressions(0, DefaultCPM))
	assert.Equal(t, 0, EstimateImpressions(-50, DefaultCPM))
	assert.Equal(t, 0, EstimateImpressions(100, 0))
	assert.Equal(t, 0, EstimateReach(0))
	assert.Equal(t, 0, EstimateReach(-10))
}

func TestEstimateImpressionsMonotonicInBudget(t *testing.T) {
	budgets := []float64{0, 1, 10, 99.99, 100, 500, 2000, 100000}
	prev := -1
	for _, b := range budgets {
		got := EstimateImpressions(b, DefaultCPM)
		assert.GreaterOrEqual(t, got, prev, "budget %v", b)
		prev = got
	}
}

func TestEstimateImpressionsAntitoneInCPM(t *testing.T) {
	cpms := []float64{1, 2, 5, 7, 10, 50}
	prev := EstimateImpressions(1000, cpms[0])
	for _, cpm := range cpms[1:] {
		got := EstimateImpressions(1000, cpm)
		assert.LessOrEqual(t, got, prev, "cpm %v", cpm)
		prev = got
	}
}
