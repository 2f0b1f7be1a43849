package mailer

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// payloadNamespace seeds the name-based UUIDs used as payload IDs.
var payloadNamespace = uuid.MustParse("5b8e8f3c-2a1d-4f6e-9c57-7d0a4e3b1f92")

// Payload is a composed notification ready for delivery.
// It is immutable: accessors return copies.
type Payload struct {
	from    mail.Address
	subject string
	html    string
	text    string
	tag     string
	to      []mail.Address
	id      uuid.UUID
}

// PayloadParams holds raw values for NewPayload.
type PayloadParams struct {
	Subject string
	HTML    string
	Text    string
	Tag     string
	From    string
	To      []string
}

// NewPayload validates the addresses in params and builds a payload.
// Use it to send pre-rendered content without a Notifier.
func NewPayload(params PayloadParams) (*Payload, error) {
	from, err := ParseAddress(params.From)
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	if len(params.To) == 0 {
		return nil, ErrNoRecipient
	}
	to, err := ParseAddresses(params.To)
	if err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}
	return newPayload(params.Subject, params.HTML, params.Text, params.Tag, from, to), nil
}

func newPayload(subject, html, text, tag string, from mail.Address, to []mail.Address) *Payload {
	p := &Payload{
		from:    from,
		subject: subject,
		html:    html,
		text:    text,
		tag:     tag,
		to:      slices.Clone(to),
	}
	p.id = uuid.NewSHA1(payloadNamespace, p.fingerprint())
	return p
}

// fingerprint serializes everything that identifies a delivery.
func (p *Payload) fingerprint() []byte {
	var b strings.Builder
	b.WriteString(p.subject)
	b.WriteByte(0)
	b.WriteString(p.from.Address)
	for _, a := range p.to {
		b.WriteByte(0)
		b.WriteString(a.Address)
	}
	b.WriteByte(0)
	b.WriteString(p.html)
	return []byte(b.String())
}

// ID is a UUIDv5 derived from subject, addresses and HTML body.
// Identical content always yields the same ID.
func (p *Payload) ID() string { return p.id.String() }

// Subject returns the message subject.
func (p *Payload) Subject() string { return p.subject }

// HTML returns the delivery-format body.
func (p *Payload) HTML() string { return p.html }

// Text returns the plain-text alternative (substituted markdown source).
func (p *Payload) Text() string { return p.text }

// Tag returns the optional provider tag.
func (p *Payload) Tag() string { return p.tag }

// From returns the sender address.
func (p *Payload) From() mail.Address { return p.from }

// To returns a copy of the recipient list in order.
func (p *Payload) To() []mail.Address { return slices.Clone(p.to) }

// Validate checks the invariants every sender relies on.
func (p *Payload) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil payload", ErrInvalidPayload)
	}
	if p.from.Address == "" {
		return fmt.Errorf("%w: missing sender", ErrInvalidPayload)
	}
	if len(p.to) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, ErrNoRecipient)
	}
	return nil
}
