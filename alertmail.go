package alertmail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/alertmail/pkg/dedup"
	"github.com/dmitrymomot/alertmail/pkg/dispatch"
	"github.com/dmitrymomot/alertmail/pkg/logger"
	"github.com/dmitrymomot/alertmail/pkg/mailer"
	"github.com/dmitrymomot/alertmail/pkg/mailer/postmark"
	"github.com/dmitrymomot/alertmail/pkg/mailer/resend"
	"github.com/dmitrymomot/alertmail/pkg/mailer/smtp"
	"github.com/dmitrymomot/alertmail/pkg/markdown"
	"github.com/dmitrymomot/alertmail/pkg/sanitizer"
)

// Transport names accepted in Config.Transports.
const (
	TransportSMTP     = "smtp"
	TransportResend   = "resend"
	TransportPostmark = "postmark"
)

// ErrUnknownTransport indicates an unsupported transport name.
var ErrUnknownTransport = errors.New("alertmail: unknown transport")

// Config aggregates everything needed to render and deliver notifications.
type Config struct {
	Log        logger.SentryConfig
	SMTP       smtp.Config
	Resend     resend.Config
	Postmark   postmark.Config
	Dispatch   DispatchConfig
	Transports []string `env:"ALERTMAIL_TRANSPORT" envDefault:"smtp" envSeparator:","`
}

// DispatchConfig controls fan-out and duplicate suppression.
type DispatchConfig struct {
	RedisURL       string        `env:"DISPATCH_REDIS_URL"`
	RedisPrefix    string        `env:"DISPATCH_REDIS_PREFIX" envDefault:"alertmail:sent"`
	PurgeSchedule  string        `env:"DISPATCH_PURGE_SCHEDULE" envDefault:"@every 5m"`
	Timeout        time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"30s"`
	SuppressWindow time.Duration `env:"DISPATCH_SUPPRESS_WINDOW" envDefault:"0s"`
	Concurrency    int           `env:"DISPATCH_CONCURRENCY" envDefault:"0"`
}

// NewLogger builds the process logger. Sentry is attached when a DSN is set.
// Log records carry the notification ID when one is in the context.
func NewLogger(cfg Config) *slog.Logger {
	if cfg.Log.DSN != "" {
		return logger.NewWithSentry(cfg.Log, logger.NotificationIDExtractor)
	}
	return logger.New(cfg.Log.Config, logger.NotificationIDExtractor)
}

// NewSender creates the transport registered under name.
func NewSender(cfg Config, name string) (mailer.Sender, error) {
	var (
		s   mailer.Sender
		err error
	)
	switch strings.ToLower(strings.TrimSpace(name)) {
	case TransportSMTP:
		s, err = smtp.New(cfg.SMTP)
	case TransportResend:
		s, err = resend.New(cfg.Resend)
	case TransportPostmark:
		s, err = postmark.New(cfg.Postmark)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, name)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewDispatcher creates a dispatcher over every configured transport.
// The returned cleanup releases the suppression store; it is never nil.
// Background work started here stops when ctx is done.
func NewDispatcher(ctx context.Context, cfg Config, log *slog.Logger) (*dispatch.Dispatcher, func() error, error) {
	if log == nil {
		log = logger.NewNope()
	}
	cleanup := func() error { return nil }

	opts := []dispatch.Option{
		dispatch.WithLogger(log),
		dispatch.WithTimeout(cfg.Dispatch.Timeout),
		dispatch.WithConcurrency(cfg.Dispatch.Concurrency),
	}

	seen := make(map[string]bool, len(cfg.Transports))
	for _, name := range cfg.Transports {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		s, err := NewSender(cfg, name)
		if err != nil {
			return nil, cleanup, fmt.Errorf("transport %s: %w", name, err)
		}
		opts = append(opts, dispatch.WithChannel(name, s))
	}

	if cfg.Dispatch.SuppressWindow > 0 {
		store, closeStore, err := newStore(ctx, cfg.Dispatch, log)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = closeStore
		opts = append(opts, dispatch.WithSuppression(store, cfg.Dispatch.SuppressWindow))
	}

	return dispatch.New(opts...), cleanup, nil
}

func newStore(ctx context.Context, cfg DispatchConfig, log *slog.Logger) (dedup.Store, func() error, error) {
	if cfg.RedisURL != "" {
		client, err := dedup.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return dedup.NewRedis(client, cfg.RedisPrefix), client.Close, nil
	}

	schedule, err := dedup.ParseSchedule(cfg.PurgeSchedule)
	if err != nil {
		return nil, nil, err
	}

	mem := dedup.NewMemory()
	janitorCtx, cancel := context.WithCancel(ctx)
	go mem.RunJanitor(janitorCtx, schedule, func(removed int) {
		if removed > 0 {
			log.DebugContext(janitorCtx, "purged expired dispatch keys", slog.Int("removed", removed))
		}
	})
	return mem, func() error { cancel(); return nil }, nil
}

// NewConverter returns the email-safe converter: GitHub-flavored markdown with
// buttons, sanitized by the email policy.
func NewConverter(opts ...markdown.Option) *markdown.Goldmark {
	return markdown.New(append([]markdown.Option{markdown.WithPolicy(sanitizer.EmailPolicy())}, opts...)...)
}

// NewNotifier creates a notifier that uses NewConverter.
func NewNotifier(content mailer.Content, log *slog.Logger) (*mailer.Notifier, error) {
	return mailer.NewNotifier(content,
		mailer.WithConverter(NewConverter()),
		mailer.WithLogger(log),
	)
}
