package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"slices"

	"github.com/dmitrymomot/alertmail/pkg/logger"
	"github.com/dmitrymomot/alertmail/pkg/markdown"
	"github.com/dmitrymomot/alertmail/pkg/placeholder"
)

// Notifier composes notifications from a fixed template and metadata.
// It is read-only after construction and safe for concurrent use; each call
// takes its own variable map.
type Notifier struct {
	converter markdown.Converter
	logger    *slog.Logger
	from      mail.Address
	subject   string
	body      string
	tag       string
	to        []mail.Address
}

// NewNotifier validates content and returns a Notifier.
// Address problems are reported here, never at render time.
func NewNotifier(content Content, opts ...Option) (*Notifier, error) {
	from, err := ParseAddress(content.From)
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	if len(content.To) == 0 {
		return nil, ErrNoRecipient
	}
	to, err := ParseAddresses(content.To)
	if err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}

	n := &Notifier{
		converter: markdown.New(),
		logger:    logger.NewNope(),
		from:      from,
		subject:   content.Subject,
		body:      content.Body,
		tag:       content.Tag,
		to:        to,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Subject returns the static subject.
func (n *Notifier) Subject() string { return n.subject }

// Template returns the body template as given at construction.
func (n *Notifier) Template() string { return n.body }

// From returns the sender address.
func (n *Notifier) From() mail.Address { return n.from }

// To returns a copy of the recipients.
func (n *Notifier) To() []mail.Address { return slices.Clone(n.to) }

// Render substitutes vars into the body template without format conversion.
func (n *Notifier) Render(vars map[string]string) string {
	return placeholder.Render(n.body, vars)
}

// FormatMessage substitutes vars and converts the result to HTML.
// If conversion fails the substituted text is returned unchanged.
func (n *Notifier) FormatMessage(vars map[string]string) string {
	return n.convert(context.Background(), n.Render(vars))
}

// Compose builds the delivery payload for one notification event.
func (n *Notifier) Compose(vars map[string]string) *Payload {
	return n.compose(context.Background(), vars)
}

// Notify composes the payload and hands it to s.
func (n *Notifier) Notify(ctx context.Context, s Sender, vars map[string]string) error {
	p := n.compose(ctx, vars)
	if err := s.Send(ctx, p); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func (n *Notifier) compose(ctx context.Context, vars map[string]string) *Payload {
	text := n.Render(vars)
	return newPayload(n.subject, n.convert(ctx, text), text, n.tag, n.from, n.to)
}

// convert applies the converter and degrades to the source text on failure.
func (n *Notifier) convert(ctx context.Context, text string) string {
	html, err := n.converter.Convert(text)
	if err != nil {
		n.logger.WarnContext(ctx, "format conversion failed, sending unconverted body",
			slog.String("subject", n.subject),
			slog.String("error", err.Error()),
		)
		return text
	}
	return html
}
