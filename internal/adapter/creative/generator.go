package creative

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"canopy-ads/internal/core/domain"
)

const systemPrompt = `You are a creative advertising genius specializing in eye-catching outdoor advertising for taxi-top digital billboards. Create compelling, professional ad content that includes:

1. A powerful headline (5-8 words max)
2. An engaging description (15-20 words max)
3. A strong call-to-action
4. A suggested logo concept (describe what the logo should look like)
5. Animation suggestions (how the ad should move/animate)
6. Color scheme recommendations
7. Visual elements that would make it stand out

Make it creative, memorable, and optimized for quick viewing on moving taxi-tops. Use emotional triggers, urgency, exclusivity, or social proof where appropriate.`

const userPromptFormat = `Create a complete, creative ad concept for a %s business. Requirements: %s.

Return your response in this exact JSON format:
{
  "headline": "Your catchy headline here",
  "description": "Your engaging description here",
  "cta": "Your compelling call-to-action",
  "logoConcept": "Describe the logo design concept",
  "animationSuggestion": "How the ad should animate",
  "colorScheme": "Primary and secondary colors",
  "visualElements": "Additional visual elements"
}`

// messageCreator is the slice of the SDK message service used here.
type messageCreator interface {
	New(ctx context.Context, params sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Generator implements port.CreativeGenerator on top of the Anthropic
// Messages API. Without an API key, or whenever the call fails, it
// degrades to static template content instead of returning an error.
type Generator struct {
	messages  messageCreator
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewGenerator builds a Generator. An empty apiKey disables the API and
// pins the generator to template content.
func NewGenerator(apiKey, model string, maxTokens int64, log *slog.Logger) *Generator {
	g := &Generator{model: model, maxTokens: maxTokens, log: log}
	if g.maxTokens <= 0 {
		g.maxTokens = 300
	}
	if apiKey == "" {
		log.Warn("text generation API key not configured, ad creatives will use template content")
		return g
	}
	client := sdk.NewClient(option.WithAPIKey(apiKey))
	g.messages = &client.Messages
	return g
}

// Generate produces an ad concept for the business type and prompt.
func (g *Generator) Generate(ctx context.Context, prompt, businessType string) (domain.AdCreative, error) {
	if g.messages == nil {
		return fallbackCreative(businessType), nil
	}

	msg, err := g.messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(g.model),
		MaxTokens:   g.maxTokens,
		Temperature: sdk.Float(0.8),
		System:      []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(fmt.Sprintf(userPromptFormat, businessType, prompt))),
		},
	})
	if err != nil {
		g.log.Error("generate ad creative", "error", err)
		return fallbackCreative(businessType), nil
	}

	var text strings.Builder
	for _, block := range msg.Content {
		text.WriteString(block.Text)
	}
	return parseCreative(text.String(), businessType), nil
}

// parseCreative decodes the model's answer. It expects the JSON shape the
// prompt asks for but tolerates surrounding prose by slicing out the
// outermost braces; anything unparseable falls back to the template.
func parseCreative(text, businessType string) domain.AdCreative {
	raw := text
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			raw = raw[i : j+1]
		}
	}

	var c domain.AdCreative
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return fallbackCreative(businessType)
	}
	fillCreativeDefaults(&c, businessType)
	return c
}
