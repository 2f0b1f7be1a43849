package mailer

import "errors"

var (
	// ErrInvalidAddress indicates a sender or recipient address could not be parsed.
	ErrInvalidAddress = errors.New("invalid email address")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("notification must have at least one recipient")

	// ErrInvalidPayload indicates a payload is missing required fields.
	ErrInvalidPayload = errors.New("invalid delivery payload")

	// ErrSendFailed indicates the sender could not deliver the payload.
	ErrSendFailed = errors.New("failed to send notification")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrInvalidConfig indicates a transport was configured with missing or invalid values.
	ErrInvalidConfig = errors.New("invalid mailer configuration")
)
