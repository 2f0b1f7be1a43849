package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/alertmail/pkg/dedup"
	"github.com/dmitrymomot/alertmail/pkg/logger"
	"github.com/dmitrymomot/alertmail/pkg/mailer"
)

const defaultTimeout = 30 * time.Second

type channel struct {
	sender mailer.Sender
	name   string
}

// Dispatcher fans a payload out to every configured channel.
type Dispatcher struct {
	store       dedup.Store
	logger      *slog.Logger
	channels    []channel
	timeout     time.Duration
	window      time.Duration
	concurrency int
}

var _ mailer.Sender = (*Dispatcher)(nil)

// New creates a dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger:  logger.NewNope(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Channels returns the configured channel names in registration order.
func (d *Dispatcher) Channels() []string {
	names := make([]string, len(d.channels))
	for i, c := range d.channels {
		names[i] = c.name
	}
	return names
}

// Send implements mailer.Sender.
func (d *Dispatcher) Send(ctx context.Context, p *mailer.Payload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(d.channels) == 0 {
		return ErrNoChannels
	}

	ctx = logger.WithNotificationID(ctx, p.ID())

	seen, recorded := d.checkSeen(ctx, p)
	if seen {
		d.logger.InfoContext(ctx, "notification suppressed as duplicate",
			slog.String("subject", p.Subject()),
			slog.Duration("window", d.window),
		)
		return nil
	}

	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	if d.concurrency > 0 {
		g.SetLimit(d.concurrency)
	}

	for _, c := range d.channels {
		g.Go(func() error {
			if err := d.sendOne(ctx, c, p); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) == 0 {
		return nil
	}
	// Nothing was delivered: release the key so a retry is not suppressed.
	// After a partial failure the key stays, since a retry would duplicate
	// the channels that succeeded.
	if recorded && len(errs) == len(d.channels) {
		if err := d.store.Forget(ctx, p.ID()); err != nil {
			d.logger.WarnContext(ctx, "failed to release duplicate key", slog.String("error", err.Error()))
		}
	}
	return errors.Join(append([]error{ErrDeliveryFailed}, errs...)...)
}

func (d *Dispatcher) sendOne(ctx context.Context, c channel, p *mailer.Payload) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	err := c.sender.Send(ctx, p)
	attrs := []any{
		slog.String("channel", c.name),
		slog.Int("recipients", len(p.To())),
		slog.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		d.logger.ErrorContext(ctx, "notification delivery failed", append(attrs, slog.String("error", err.Error()))...)
		return err
	}
	d.logger.InfoContext(ctx, "notification delivered", attrs...)
	return nil
}

// checkSeen consults the store. Store errors never block delivery.
// recorded reports whether the store now holds the payload ID.
func (d *Dispatcher) checkSeen(ctx context.Context, p *mailer.Payload) (seen, recorded bool) {
	if d.store == nil || d.window <= 0 {
		return false, false
	}
	seen, err := d.store.Seen(ctx, p.ID(), d.window)
	if err != nil {
		d.logger.WarnContext(ctx, "duplicate check failed, delivering anyway", slog.String("error", err.Error()))
		return false, false
	}
	return seen, !seen
}
