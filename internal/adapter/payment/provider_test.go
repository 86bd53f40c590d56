package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy-ads/internal/core/port"
)

func TestCreateIntentReturnsDistinctHandles(t *testing.T) {
	p := NewProvider("whsec_test")

	a, err := p.CreateIntent(context.Background(), port.IntentReq{AmountMinor: 25000, Currency: "GBP"})
	require.NoError(t, err)
	b, err := p.CreateIntent(context.Background(), port.IntentReq{AmountMinor: 25000, Currency: "GBP"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.ID, "pi_"))
	assert.True(t, strings.HasPrefix(a.ClientSecret, a.ID+"_secret_"))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateIntentValidates(t *testing.T) {
	p := NewProvider("whsec_test")

	_, err := p.CreateIntent(context.Background(), port.IntentReq{AmountMinor: 0, Currency: "GBP"})
	assert.Error(t, err)

	_, err = p.CreateIntent(context.Background(), port.IntentReq{AmountMinor: 100})
	assert.Error(t, err)
}

func TestVerifyWebhookRoundTrip(t *testing.T) {
	p := NewProvider("whsec_test")
	payload := []byte(`{"type":"payment.succeeded","intentId":"pi_abc"}`)

	event, err := p.VerifyWebhook(payload, p.Sign(payload))
	require.NoError(t, err)
	assert.Equal(t, port.PaymentSucceeded, event.Type)
	assert.Equal(t, "pi_abc", event.IntentID)
}

func TestVerifyWebhookRejectsTampering(t *testing.T) {
	p := NewProvider("whsec_test")
	payload := []byte(`{"type":"payment.succeeded","intentId":"pi_abc"}`)
	sig := p.Sign(payload)

	tampered := []byte(`{"type":"payment.succeeded","intentId":"pi_xyz"}`)
	_, err := p.VerifyWebhook(tampered, sig)
	assert.ErrorIs(t, err, ErrBadSignature)

	_, err = p.VerifyWebhook(payload, "not-hex")
	assert.ErrorIs(t, err, ErrBadSignature)

	other := NewProvider("whsec_other")
	_, err = other.VerifyWebhook(payload, sig)
	assert.ErrorIs(t, err, ErrBadSignature)
}
