package smtp

import "time"

// Connection modes.
const (
	TLSModeStartTLS = "starttls"
	TLSModeTLS      = "tls"
	TLSModePlain    = "plain"
)

// Config holds SMTP server configuration.
type Config struct {
	Host        string        `env:"SMTP_HOST"`
	Username    string        `env:"SMTP_USERNAME"`
	Password    string        `env:"SMTP_PASSWORD"`
	TLSMode     string        `env:"SMTP_TLS_MODE" envDefault:"starttls"`
	Port        int           `env:"SMTP_PORT" envDefault:"587"`
	DialTimeout time.Duration `env:"SMTP_DIAL_TIMEOUT" envDefault:"10s"`
}
