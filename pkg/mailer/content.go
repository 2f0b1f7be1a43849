package mailer

import (
	"bytes"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Content is the static definition of a notifier: subject, markdown body
// template with ${name} placeholders, sender and recipients.
// Embed it in your app config for env parsing with caarlos0/env, or load it
// from a markdown file with LoadContent.
type Content struct {
	Subject string   `yaml:"subject" env:"ALERTMAIL_SUBJECT"`
	Body    string   `yaml:"-" env:"ALERTMAIL_BODY"`
	From    string   `yaml:"from" env:"ALERTMAIL_FROM"`
	Tag     string   `yaml:"tag" env:"ALERTMAIL_TAG"`
	To      []string `yaml:"to" env:"ALERTMAIL_TO" envSeparator:","`
}

var frontmatterDelim = []byte("---")

// ParseContent reads a notifier definition from markdown with optional YAML frontmatter:
//
//	---
//	subject: Large transfer on ${network}
//	from: Monitor <monitor@example.com>
//	to:
//	  - ops@example.com
//	---
//	**${amount}** moved in tx ${tx_hash}
//
// Without frontmatter the whole input becomes the body.
func ParseContent(data []byte) (Content, error) {
	if !bytes.HasPrefix(data, frontmatterDelim) {
		return Content{Body: string(data)}, nil
	}

	afterOpen := bytes.TrimLeft(bytes.TrimPrefix(data, frontmatterDelim), "\r\n")
	if len(afterOpen) == 0 {
		return Content{}, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	header, body, ok := splitAtDelimiterLine(afterOpen)
	if !ok {
		return Content{}, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	var c Content
	if len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, &c); err != nil {
			return Content{}, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	c.Body = string(body)
	return c, nil
}

// splitAtDelimiterLine finds the first line consisting only of "---" and
// returns what precedes it and what follows its line break.
func splitAtDelimiterLine(b []byte) (before, after []byte, ok bool) {
	for off := 0; off < len(b); {
		next := len(b)
		line := b[off:]
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = off + i + 1
		}
		if bytes.Equal(bytes.TrimSuffix(line, []byte("\r")), frontmatterDelim) {
			return b[:off], b[next:], true
		}
		off = next
	}
	return nil, nil, false
}

// LoadContent reads and parses a notifier definition from fsys.
func LoadContent(fsys fs.FS, name string) (Content, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Content{}, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	c, err := ParseContent(data)
	if err != nil {
		return Content{}, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}
