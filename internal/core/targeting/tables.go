package targeting

import "canopy-ads/internal/core/domain"

// Static lookup tables keyed by business category. The entries are demo
// archetypes carried over from the platform's web tier; they are not real
// geocoded or measured data.

var competitorNames = map[domain.BusinessCategory][]string{
	domain.CategoryRestaurantFood:       {"McDonald's", "Subway", "Pizza Express", "KFC", "Burger King", "Domino's"},
	domain.CategoryRetailShopping:       {"Primark", "H&M", "Zara", "Next", "Marks & Spencer", "John Lewis"},
	domain.CategoryProfessionalServices: {"Deloitte", "PwC", "KPMG", "EY", "Accenture", "McKinsey"},
	domain.CategoryHealthBeauty:         {"Boots", "Superdrug", "The Body Shop", "Lush", "MAC", "Sephora"},
	domain.CategoryAutomotive:           {"BMW", "Mercedes-Benz", "Audi", "Toyota", "Ford", "Volkswagen"},
}

var genericCompetitors = []string{"Competitor A", "Competitor B", "Competitor C"}

var (
	routeTypes = []string{"High Street", "Station Road", "Shopping Centre", "Business District", "University Area", "Industrial Estate"}

	routeTrafficTypes = []string{"Shopping District", "Commuter Route", "Business Area", "Tourist Zone", "Student Area", "Residential"}

	routeTrafficLevels = []string{"High", "Peak Hours", "All Day", "Evening", "Weekend", "Business Hours"}
)

var peakHourSets = map[domain.BusinessCategory][]string{
	domain.CategoryRestaurantFood:       {"12-2 PM", "6-8 PM", "11 AM-1 PM", "7-9 PM"},
	domain.CategoryRetailShopping:       {"10 AM-6 PM", "7-9 PM", "11 AM-5 PM", "6-8 PM"},
	domain.CategoryProfessionalServices: {"8-10 AM", "5-7 PM", "9-11 AM", "4-6 PM"},
	domain.CategoryHealthBeauty:         {"10 AM-4 PM", "6-8 PM", "11 AM-3 PM", "5-7 PM"},
	domain.CategoryAutomotive:           {"9 AM-6 PM", "10 AM-4 PM (Weekends)", "8 AM-5 PM", "11 AM-3 PM"},
}

var genericPeakHours = []string{"8-10 AM", "5-7 PM"}

var strategicRecommendations = map[domain.BusinessCategory][]string{
	domain.CategoryRestaurantFood: {
		"Target lunch and dinner rush hours for maximum visibility",
		"Focus on commuter routes and shopping districts",
		"Consider competitor locations for conquesting campaigns",
		"Weekend targeting for family dining occasions",
	},
	domain.CategoryRetailShopping: {
		"Target shopping districts and high-street locations",
		"Focus on weekend and holiday shopping periods",
		"Consider tourist areas for seasonal campaigns",
		"Competitor conquesting in shopping centres",
	},
	domain.CategoryProfessionalServices: {
		"Target business districts during commuter hours",
		"Focus on financial and corporate areas",
		"Consider competitor locations for B2B conquesting",
		"Weekday targeting for professional audience",
	},
	domain.CategoryHealthBeauty: {
		"Target shopping areas and health centres",
		"Focus on weekend and evening hours",
		"Consider student areas for younger demographics",
		"Competitor conquesting in pharmacy locations",
	},
	domain.CategoryAutomotive: {
		"Target motorway access points and industrial areas",
		"Focus on weekend showroom visits",
		"Consider competitor dealership locations",
		"Business hours targeting for fleet customers",
	},
}

var genericRecommendations = []string{
	"Target high-footfall areas within your radius",
	"Focus on commuter routes during peak hours",
	"Consider competitor locations for conquesting",
	"Optimize for your business hours",
}

// majorCities gate the extra "major city" recommendation line.
var majorCities = []string{"London", "Manchester", "Birmingham"}
