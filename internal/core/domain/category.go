package domain

// BusinessCategory is the enumerated business type used to key targeting
// lookup tables. Free-text labels from the campaign wizard are mapped via
// ParseBusinessCategory; anything unrecognised falls back to CategoryOther.
type BusinessCategory string

const (
	CategoryRestaurantFood       BusinessCategory = "Restaurant & Food"
	CategoryRetailShopping       BusinessCategory = "Retail & Shopping"
	CategoryProfessionalServices BusinessCategory = "Professional Services"
	CategoryHealthBeauty         BusinessCategory = "Health & Beauty"
	CategoryAutomotive           BusinessCategory = "Automotive"
	CategoryOther                BusinessCategory = "Other"
)

// ParseBusinessCategory maps a free-text business type to a category.
func ParseBusinessCategory(s string) BusinessCategory {
	switch BusinessCategory(s) {
	case CategoryRestaurantFood,
		CategoryRetailShopping,
		CategoryProfessionalServices,
		CategoryHealthBeauty,
		CategoryAutomotive:
		return BusinessCategory(s)
	default:
		return CategoryOther
	}
}
