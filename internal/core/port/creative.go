package port

import (
	"context"

	"canopy-ads/internal/core/domain"
)

// CreativeGenerator is the outbound port for the text-generation
// collaborator. Implementations must degrade to deterministic template
// content derived from the business type instead of surfacing provider
// failures to the caller.
type CreativeGenerator interface {
	Generate(ctx context.Context, prompt, businessType string) (domain.AdCreative, error)
}
