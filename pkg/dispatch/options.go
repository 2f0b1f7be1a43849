package dispatch

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/alertmail/pkg/dedup"
	"github.com/dmitrymomot/alertmail/pkg/mailer"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithChannel adds a named delivery channel. Nil senders are ignored.
func WithChannel(name string, s mailer.Sender) Option {
	return func(d *Dispatcher) {
		if s != nil {
			d.channels = append(d.channels, channel{name: name, sender: s})
		}
	}
}

// WithTimeout bounds each channel's Send call. Zero disables the timeout.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// WithSuppression skips payloads already dispatched within window.
func WithSuppression(store dedup.Store, window time.Duration) Option {
	return func(d *Dispatcher) {
		d.store = store
		d.window = window
	}
}

// WithLogger sets the logger. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithConcurrency caps how many channels are sent to at once. Zero means no limit.
func WithConcurrency(n int) Option {
	return func(d *Dispatcher) {
		d.concurrency = n
	}
}
