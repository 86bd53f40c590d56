package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"canopy-ads/internal/core/port"
)

// ErrBadSignature is returned when a webhook payload fails verification.
var ErrBadSignature = errors.New("webhook signature mismatch")

// Provider implements port.PaymentProvider against a card gateway that
// signs webhook callbacks with HMAC-SHA256 over the raw body. Intents are
// created locally and confirmed client-side with the returned secret; the
// gateway reports the outcome through the signed webhook.
type Provider struct {
	webhookSecret []byte
}

// NewProvider builds a Provider with the shared webhook signing secret.
func NewProvider(webhookSecret string) *Provider {
	return &Provider{webhookSecret: []byte(webhookSecret)}
}

// CreateIntent registers a charge and returns the client-confirmable
// handle.
func (p *Provider) CreateIntent(_ context.Context, req port.IntentReq) (*port.PaymentIntent, error) {
	if req.AmountMinor <= 0 {
		return nil, fmt.Errorf("intent amount must be positive, got %d", req.AmountMinor)
	}
	if req.Currency == "" {
		return nil, errors.New("intent currency is required")
	}

	id := "pi_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	return &port.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
	}, nil
}

// VerifyWebhook checks the hex HMAC-SHA256 signature over the raw payload
// and decodes the event. The comparison is constant time.
func (p *Provider) VerifyWebhook(payload []byte, signature string) (*port.PaymentEvent, error) {
	want, err := hex.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed signature", ErrBadSignature)
	}

	mac := hmac.New(sha256.New, p.webhookSecret)
	mac.Write(payload)
	if !hmac.Equal(mac.Sum(nil), want) {
		return nil, ErrBadSignature
	}

	var event port.PaymentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("decode webhook event: %w", err)
	}
	if event.IntentID == "" {
		return nil, errors.New("webhook event missing intent id")
	}
	return &event, nil
}

// Sign computes the signature the gateway attaches to a payload. Exported
// for tests and local tooling that replays webhooks.
func (p *Provider) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, p.webhookSecret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
