package targeting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"canopy-ads/internal/core/domain"
)

const (
	// maxRecommendations caps the strategic recommendation list.
	maxRecommendations = 4

	// maxOptimalRadiusKm caps the budget-adjusted radius.
	maxOptimalRadiusKm = 6.0

	defaultRadiusKm = 2.5
	defaultBudget   = 1000.0
)

// Recommend produces targeting advice for a campaign: nearby competitor
// placeholders, high-footfall route archetypes, peak-hour windows and a
// capped list of strategy strings, plus a budget-adjusted optimal radius.
// It is deterministic, makes no external calls and is recomputed on every
// request. Non-positive inputs are substituted with the platform defaults
// (2.5 km, 1000 budget) rather than rejected.
func Recommend(businessType, location string, budget, radiusKm float64) domain.Recommendation {
	if radiusKm <= 0 {
		radiusKm = defaultRadiusKm
	}
	if budget <= 0 {
		budget = defaultBudget
	}
	category := domain.ParseBusinessCategory(businessType)

	multiplier := 1.0
	switch {
	case budget > 2000:
		multiplier = 1.3
	case budget > 1000:
		multiplier = 1.1
	}
	optimal := math.Min(radiusKm*multiplier, maxOptimalRadiusKm)
	optimal = math.Round(optimal*10) / 10

	return domain.Recommendation{
		OptimalRadius:       optimal,
		CompetitorLocations: competitorsFor(category, location, radiusKm),
		HighFootfallRoutes:  trafficRoutesFor(location, radiusKm),
		PeakHours:           peakHoursFor(category, radiusKm),
		Recommendations:     strategiesFor(category, location, radiusKm, budget),
		Location:            location,
		BusinessType:        businessType,
		Budget:              budget,
		TargetRadius:        radiusKm,
		GeneratedAt:         time.Now().UTC(),
	}
}

// competitorsFor slices the category's competitor list to
// min(3, floor(radius*1.5)) entries and fabricates an address and a
// linearly increasing distance label per entry.
func competitorsFor(category domain.BusinessCategory, location string, radiusKm float64) []domain.CompetitorLocation {
	names, ok := competitorNames[category]
	if !ok {
		names = genericCompetitors
	}
	count := min(3, int(math.Floor(radiusKm*1.5)))
	if count > len(names) {
		count = len(names)
	}

	out := make([]domain.CompetitorLocation, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, domain.CompetitorLocation{
			Name:     names[i],
			Address:  fmt.Sprintf("%d %s Street", 100+i*200, location),
			Distance: fmt.Sprintf("%.1fkm", 0.5+float64(i)*0.3),
		})
	}
	return out
}

// trafficRoutesFor derives min(3, floor(radius*1.2)) routes by cycling
// through the archetype tables.
func trafficRoutesFor(location string, radiusKm float64) []domain.TrafficRoute {
	count := min(3, int(math.Floor(radiusKm*1.2)))
	out := make([]domain.TrafficRoute, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, domain.TrafficRoute{
			Name:    fmt.Sprintf("%s %s", routeTypes[i%len(routeTypes)], location),
			Type:    routeTrafficTypes[i%len(routeTrafficTypes)],
			Traffic: routeTrafficLevels[i%len(routeTrafficLevels)],
		})
	}
	return out
}

// peakHoursFor selects min(2, floor(radius)) peak-hour labels from the
// category table.
func peakHoursFor(category domain.BusinessCategory, radiusKm float64) []string {
	hours, ok := peakHourSets[category]
	if !ok {
		hours = genericPeakHours
	}
	count := min(2, int(math.Floor(radiusKm)))
	if count > len(hours) {
		count = len(hours)
	}
	if count < 0 {
		count = 0
	}
	return append([]string(nil), hours[:count]...)
}

// strategiesFor takes the first three static entries for the category and
// appends context-dependent lines for wide radii, high budgets and major
// city locations, capping the list at maxRecommendations.
func strategiesFor(category domain.BusinessCategory, location string, radiusKm, budget float64) []string {
	base, ok := strategicRecommendations[category]
	if !ok {
		base = genericRecommendations
	}
	n := min(3, len(base))
	out := append([]string(nil), base[:n]...)

	if radiusKm > 3 {
		out = append(out, fmt.Sprintf("With a %gkm radius, consider targeting multiple city zones", radiusKm))
	}
	if budget > 2000 {
		out = append(out, "High budget allows for premium screen placements and extended hours")
	}
	for _, city := range majorCities {
		if strings.Contains(location, city) {
			out = append(out, "Major city location enables access to high-traffic commercial areas")
			break
		}
	}

	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}
