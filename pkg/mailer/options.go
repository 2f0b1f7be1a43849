package mailer

import (
	"log/slog"

	"github.com/dmitrymomot/alertmail/pkg/markdown"
)

// Option configures a Notifier.
type Option func(*Notifier)

// WithConverter sets the format converter. Default: markdown.New().
func WithConverter(c markdown.Converter) Option {
	return func(n *Notifier) {
		if c != nil {
			n.converter = c
		}
	}
}

// WithLogger sets the logger used for conversion fallback warnings.
// Default: a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}
