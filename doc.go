// Package alertmail renders templated alert notifications and delivers them by
// email.
//
// A notification template is markdown with ${name} placeholders. Rendering
// substitutes known variables, converts the result to sanitized HTML and
// composes an immutable payload; delivery hands that payload to one or more
// transports (SMTP, Resend, Postmark) with optional duplicate suppression.
//
// The subpackages can be used on their own. This package wires them from
// environment configuration:
//
//	var cfg alertmail.Config
//	config.MustLoad(&cfg)
//
//	log := alertmail.NewLogger(cfg)
//	d, cleanup, err := alertmail.NewDispatcher(ctx, cfg, log)
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
//	n, err := alertmail.NewNotifier(mailer.Content{
//		Subject: "Price alert",
//		Body:    "**${symbol}** crossed ${price}",
//		From:    "alerts@example.com",
//		To:      []string{"trader@example.com"},
//	}, log)
//	if err != nil {
//		return err
//	}
//	err = n.Notify(ctx, d, map[string]string{"symbol": "ETH", "price": "4000"})
//
// # Transports
//
// ALERTMAIL_TRANSPORT lists one or more transports, comma-separated:
// "smtp", "resend", "postmark". With several, every payload is sent through
// all of them concurrently.
//
// # Duplicate suppression
//
// DISPATCH_SUPPRESS_WINDOW > 0 enables suppression. Identical payloads within
// the window are delivered once. The store is Redis when DISPATCH_REDIS_URL is
// set, otherwise in-process memory purged on DISPATCH_PURGE_SCHEDULE.
package alertmail
