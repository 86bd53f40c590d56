package configs

// Payment configures the card gateway integration. WebhookSecret is the
// shared key webhook callbacks are signed with.
type Payment struct {
	WebhookSecret string `env:"WEBHOOK_SECRET" envDefault:"whsec_dev"`
}
