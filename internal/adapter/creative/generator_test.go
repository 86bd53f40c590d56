package creative

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessages struct {
	text string
	err  error
}

func (f *fakeMessages) New(context.Context, sdk.MessageNewParams, ...option.RequestOption) (*sdk.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sdk.Message{Content: []sdk.ContentBlockUnion{{Type: "text", Text: f.text}}}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateWithoutKeyUsesTemplate(t *testing.T) {
	g := NewGenerator("", "", 0, discardLogger())

	c, err := g.Generate(context.Background(), "weekend promo", "Retail & Shopping")
	require.NoError(t, err)
	assert.Equal(t, "Retail & Shopping Ultimate Experience", c.Headline)
	assert.Equal(t, "Experience Now", c.CTA)
}

func TestGenerateParsesModelJSON(t *testing.T) {
	g := &Generator{
		messages: &fakeMessages{text: `Here is the concept:
{"headline":"Hot Wheels, Hot Deals","description":"Premium detailing while you wait","cta":"Book Today"}`},
		log: discardLogger(),
	}

	c, err := g.Generate(context.Background(), "detailing offer", "Automotive")
	require.NoError(t, err)
	assert.Equal(t, "Hot Wheels, Hot Deals", c.Headline)
	assert.Equal(t, "Book Today", c.CTA)
	// fields the model omitted get defaults, not empty strings
	assert.Equal(t, "Automotive themed logo", c.LogoConcept)
	assert.Equal(t, "Orange and white", c.ColorScheme)
}

func TestGenerateDegradesOnAPIError(t *testing.T) {
	g := &Generator{
		messages: &fakeMessages{err: errors.New("overloaded")},
		log:      discardLogger(),
	}

	c, err := g.Generate(context.Background(), "anything", "Health & Beauty")
	require.NoError(t, err, "provider failures must not surface to callers")
	assert.Equal(t, "Health & Beauty Ultimate Experience", c.Headline)
}

func TestGenerateDegradesOnUnparseableAnswer(t *testing.T) {
	g := &Generator{
		messages: &fakeMessages{text: "Sorry, I cannot help with that."},
		log:      discardLogger(),
	}

	c, err := g.Generate(context.Background(), "x", "Other")
	require.NoError(t, err)
	assert.Equal(t, "Other Ultimate Experience", c.Headline)
}
