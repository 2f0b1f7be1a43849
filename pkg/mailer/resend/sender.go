package resend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/alertmail/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
}

var _ mailer.Sender = (*Sender)(nil)

// New creates a Resend sender.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", mailer.ErrInvalidConfig)
	}

	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: BaseURL must be an absolute URL", mailer.ErrInvalidConfig)
		}
		client.BaseURL = u
	}

	return &Sender{client: client}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, p *mailer.Payload) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if _, err := s.client.Emails.SendWithContext(ctx, buildRequest(p)); err != nil {
		return errors.Join(mailer.ErrSendFailed, fmt.Errorf("resend: %w", err))
	}
	return nil
}

func buildRequest(p *mailer.Payload) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:    mailer.FormatAddress(p.From()),
		To:      mailer.FormatAddresses(p.To()),
		Subject: p.Subject(),
		Html:    p.HTML(),
		Text:    p.Text(),
		Headers: map[string]string{"X-Entity-Ref-ID": p.ID()},
	}
	if p.Tag() != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: tagValue(p.Tag())}}
	}
	return req
}

// Resend only accepts ASCII letters, numbers, underscores and dashes in tag values.
var invalidTagChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

func tagValue(v string) string {
	return invalidTagChars.ReplaceAllString(v, "_")
}
