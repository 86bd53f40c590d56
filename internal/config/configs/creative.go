package configs

// Creative configures the text-generation backend for ad creatives. An
// empty APIKey disables the backend; creatives then come from the static
// template.
type Creative struct {
	APIKey    string `env:"API_KEY"`
	Model     string `env:"MODEL" envDefault:"claude-sonnet-4-5-20250929"`
	MaxTokens int64  `env:"MAX_TOKENS" envDefault:"300"`
}
