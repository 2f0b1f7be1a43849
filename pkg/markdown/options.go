package markdown

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// Option configures the goldmark converter.
type Option func(*options)

type options struct {
	policy    *bluemonday.Policy
	layout    *template.Template
	hardWraps bool
}

// WithPolicy sanitizes the generated HTML with the given policy before it is
// placed into the layout. A nil policy disables sanitization.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLayout wraps the converted fragment in an html/template.
// The template is executed with a map holding the fragment under "Content".
func WithLayout(tmpl *template.Template) Option {
	return func(o *options) {
		o.layout = tmpl
	}
}

// WithHardWraps renders single newlines as <br>.
// Alert bodies are often written line by line and read better this way.
func WithHardWraps() Option {
	return func(o *options) {
		o.hardWraps = true
	}
}
