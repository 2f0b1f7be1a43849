package resend

// Config holds Resend provider configuration.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
	// BaseURL overrides the API endpoint. Empty means the Resend default.
	BaseURL string `env:"RESEND_BASE_URL"`
}
