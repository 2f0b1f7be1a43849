package postmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/alertmail/pkg/mailer"
)

// Config holds Postmark credentials.
type Config struct {
	ServerToken   string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken  string `env:"POSTMARK_ACCOUNT_TOKEN"`
	MessageStream string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
	BaseURL       string `env:"POSTMARK_BASE_URL"`
	TrackOpens    bool   `env:"POSTMARK_TRACK_OPENS" envDefault:"false"`
}

// Client implements mailer.Sender using Postmark.
type Client struct {
	client *postmark.Client
	config Config
}

var _ mailer.Sender = (*Client)(nil)

// New creates a Postmark-backed sender.
func New(cfg Config) (*Client, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", mailer.ErrInvalidConfig)
	}

	c := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	if cfg.BaseURL != "" {
		c.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	return &Client{client: c, config: cfg}, nil
}

// Send implements mailer.Sender.
func (c *Client) Send(ctx context.Context, p *mailer.Payload) error {
	if err := p.Validate(); err != nil {
		return err
	}

	resp, err := c.client.SendEmail(ctx, c.buildEmail(p))
	if err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			mailer.ErrSendFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}

func (c *Client) buildEmail(p *mailer.Payload) postmark.Email {
	e := postmark.Email{
		From:          mailer.FormatAddress(p.From()),
		To:            strings.Join(mailer.FormatAddresses(p.To()), ","),
		Subject:       p.Subject(),
		Tag:           p.Tag(),
		HTMLBody:      p.HTML(),
		TextBody:      p.Text(),
		MessageStream: c.config.MessageStream,
	}
	if c.config.TrackOpens {
		e.TrackOpens = true
		e.TrackLinks = "HtmlOnly"
	}
	return e
}
