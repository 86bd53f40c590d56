package port

import "context"

// PaymentIntent is the opaque client-confirmable handle returned by the
// payment collaborator.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentEventType enumerates the webhook callbacks the platform reacts to.
type PaymentEventType string

const (
	PaymentSucceeded PaymentEventType = "payment.succeeded"
	PaymentFailedEv  PaymentEventType = "payment.failed"
)

// PaymentEvent is a verified webhook callback from the provider.
type PaymentEvent struct {
	Type     PaymentEventType `json:"type"`
	IntentID string           `json:"intentId"`
}

// IntentReq describes the charge to raise. Amount is in minor currency
// units (pence).
type IntentReq struct {
	AmountMinor int64
	Currency    string
	Metadata    map[string]string
}

// PaymentProvider is the outbound port for the payment collaborator.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, req IntentReq) (*PaymentIntent, error)
	// VerifyWebhook authenticates a callback payload against its
	// signature and decodes the event. An invalid signature is an error.
	VerifyWebhook(payload []byte, signature string) (*PaymentEvent, error)
}
