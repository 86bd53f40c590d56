package creative

import "canopy-ads/internal/core/domain"

// fallbackCreative returns the static ad concept served when no text
// generation backend is configured or the call fails.
func fallbackCreative(businessType string) domain.AdCreative {
	return domain.AdCreative{
		Headline:            businessType + " Ultimate Experience",
		Description:         "Discover something extraordinary today!",
		CTA:                 "Experience Now",
		LogoConcept:         businessType + " themed logo with modern, clean design",
		AnimationSuggestion: "Smooth fade transitions with subtle animations",
		ColorScheme:         "Orange and white with complementary accents",
		VisualElements:      "Professional imagery with motion graphics and effects",
	}
}

// fillCreativeDefaults replaces empty fields of a parsed model response
// with serviceable defaults so a partial answer still renders.
func fillCreativeDefaults(c *domain.AdCreative, businessType string) {
	if c.Headline == "" {
		c.Headline = "Amazing Offer!"
	}
	if c.Description == "" {
		c.Description = "Visit us today!"
	}
	if c.CTA == "" {
		c.CTA = "Visit Now"
	}
	if c.LogoConcept == "" {
		c.LogoConcept = businessType + " themed logo"
	}
	if c.AnimationSuggestion == "" {
		c.AnimationSuggestion = "Smooth fade transitions"
	}
	if c.ColorScheme == "" {
		c.ColorScheme = "Orange and white"
	}
	if c.VisualElements == "" {
		c.VisualElements = "Professional imagery"
	}
}
