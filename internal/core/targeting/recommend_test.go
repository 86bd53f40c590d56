package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy-ads/internal/core/domain"
)

func TestRecommendKnownCategory(t *testing.T) {
	rec := Recommend(string(domain.CategoryRestaurantFood), "Soho", 1500, 2)

	require.Len(t, rec.CompetitorLocations, 3) // min(3, floor(2*1.5))
	assert.Equal(t, "McDonald's", rec.CompetitorLocations[0].Name)
	assert.Equal(t, "100 Soho Street", rec.CompetitorLocations[0].Address)
	assert.Equal(t, "0.5km", rec.CompetitorLocations[0].Distance)
	assert.Equal(t, "300 Soho Street", rec.CompetitorLocations[1].Address)
	assert.Equal(t, "0.8km", rec.CompetitorLocations[1].Distance)

	require.Len(t, rec.HighFootfallRoutes, 2) // min(3, floor(2*1.2))
	assert.Equal(t, "High Street Soho", rec.HighFootfallRoutes[0].Name)
	assert.Equal(t, "Commuter Route", rec.HighFootfallRoutes[1].Type)

	assert.Equal(t, []string{"12-2 PM", "6-8 PM"}, rec.PeakHours) // min(2, floor(2))

	// budget 1500 > 1000: multiplier 1.1, radius 2 -> 2.2
	assert.Equal(t, 2.2, rec.OptimalRadius)
}

func TestRecommendUnknownCategoryFallsBack(t *testing.T) {
	rec := Recommend("Space Tourism", "Leeds", 900, 2)

	require.Len(t, rec.CompetitorLocations, 3)
	assert.Equal(t, "Competitor A", rec.CompetitorLocations[0].Name)
	assert.Equal(t, []string{"8-10 AM", "5-7 PM"}, rec.PeakHours)
	assert.Equal(t, genericRecommendations[:3], rec.Recommendations)

	// budget <= 1000: multiplier 1.0
	assert.Equal(t, 2.0, rec.OptimalRadius)
}

func TestRecommendCapsRecommendationsAtFour(t *testing.T) {
	// Wide radius + high budget + major city: three extra lines would
	// apply, but the list stays capped at 4.
	rec := Recommend(string(domain.CategoryRetailShopping), "Central London", 5000, 5)
	assert.LessOrEqual(t, len(rec.Recommendations), 4)
	assert.Len(t, rec.Recommendations, 4)
	assert.Contains(t, rec.Recommendations[3], "5km radius")
}

func TestRecommendRadiusClamp(t *testing.T) {
	// 5 * 1.3 = 6.5, clamped to 6.
	rec := Recommend(string(domain.CategoryAutomotive), "Birmingham", 3000, 5)
	assert.Equal(t, 6.0, rec.OptimalRadius)
}

func TestRecommendSubstitutesDegenerateInputs(t *testing.T) {
	rec := Recommend(string(domain.CategoryHealthBeauty), "York", 0, 0)

	assert.Equal(t, 2.5, rec.TargetRadius)
	assert.Equal(t, 1000.0, rec.Budget)
	// radius 2.5, budget 1000 -> multiplier 1.0
	assert.Equal(t, 2.5, rec.OptimalRadius)
	require.Len(t, rec.CompetitorLocations, 3)
	require.Len(t, rec.HighFootfallRoutes, 3)
	assert.Equal(t, []string{"10 AM-4 PM", "6-8 PM"}, rec.PeakHours)
}

func TestRecommendTinyRadiusYieldsEmptySlices(t *testing.T) {
	rec := Recommend(string(domain.CategoryRestaurantFood), "Bath", 500, 0.5)

	assert.Empty(t, rec.CompetitorLocations) // floor(0.5*1.5) = 0
	assert.Empty(t, rec.HighFootfallRoutes)  // floor(0.5*1.2) = 0
	assert.Empty(t, rec.PeakHours)           // floor(0.5) = 0
	assert.Len(t, rec.Recommendations, 3)
}

func TestRecommendMajorCityLine(t *testing.T) {
	rec := Recommend(string(domain.CategoryProfessionalServices), "Manchester", 500, 1)
	assert.Contains(t, rec.Recommendations, "Major city location enables access to high-traffic commercial areas")
}
