package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/dmitrymomot/alertmail/pkg/mailer"
)

// Client implements mailer.Sender over SMTP. Safe for concurrent use;
// each Send opens its own connection.
type Client struct {
	auth   smtp.Auth
	now    func() time.Time
	config Config
}

var _ mailer.Sender = (*Client)(nil)

// New validates cfg and creates an SMTP client.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", mailer.ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be between 1 and 65535", mailer.ErrInvalidConfig)
	}
	switch cfg.TLSMode {
	case TLSModeStartTLS, TLSModeTLS, TLSModePlain:
	default:
		return nil, fmt.Errorf("%w: TLSMode must be starttls, tls, or plain", mailer.ErrInvalidConfig)
	}
	if cfg.Username != "" && cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required when Username is set", mailer.ErrInvalidConfig)
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 10 * time.Second
	}

	c := &Client{config: cfg, now: time.Now}
	if cfg.Username != "" {
		c.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return c, nil
}

// MustNew is like New but panics on invalid config.
func MustNew(cfg Config) *Client {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Send implements mailer.Sender.
func (c *Client) Send(ctx context.Context, p *mailer.Payload) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	msg := buildMessage(p, c.config.Host, c.now())

	if err := c.deliver(ctx, p, msg); err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	return nil
}

func (c *Client) deliver(ctx context.Context, p *mailer.Payload, msg []byte) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if c.config.TLSMode == TLSModeStartTLS {
		if err := client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	return c.transact(client, p, msg)
}

func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))
	nd := &net.Dialer{Timeout: c.config.DialTimeout}

	if c.config.TLSMode == TLSModeTLS {
		td := &tls.Dialer{NetDialer: nd, Config: &tls.Config{ServerName: c.config.Host}}
		conn, err := td.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to SMTP server with TLS: %w", err)
		}
		return conn, nil
	}

	conn, err := nd.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	return conn, nil
}

func (c *Client) transact(client *smtp.Client, p *mailer.Payload, msg []byte) error {
	if c.auth != nil {
		if err := client.Auth(c.auth); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}

	if err := client.Mail(p.From().Address); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range p.To() {
		if err := client.Rcpt(rcpt.Address); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", rcpt.Address, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	// Some servers drop the connection right after DATA; the message is already accepted.
	_ = client.Quit()
	return nil
}
