package configs

// Pricing holds the flat-rate commercial constants used for impression
// estimation and screen capacity. The defaults mirror the platform's
// launch pricing; overriding CPM rescales every estimate and synthesized
// spend figure.
type Pricing struct {
	// CPM is the flat cost per thousand impressions in currency units.
	CPM float64 `env:"CPM" envDefault:"7.00"`
	// Currency is the ISO 4217 code charges are raised in.
	Currency string `env:"CURRENCY" envDefault:"GBP"`
	// MaxScreenBookings caps concurrently overlapping bookings per screen.
	MaxScreenBookings int `env:"MAX_SCREEN_BOOKINGS" envDefault:"3"`
}
