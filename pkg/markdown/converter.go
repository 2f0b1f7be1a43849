package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter turns authoring-format text into delivery-format HTML.
type Converter interface {
	Convert(src string) (string, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(src string) (string, error)

// Convert calls f(src).
func (f ConverterFunc) Convert(src string) (string, error) {
	return f(src)
}

// Goldmark is the default Converter.
type Goldmark struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	layout *template.Template
}

// New builds a goldmark-backed converter.
func New(opts ...Option) *Goldmark {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var rendererOpts []renderer.Option
	if o.hardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, NewButtonExtension()),
			goldmark.WithRendererOptions(rendererOpts...),
		),
		policy: o.policy,
		layout: o.layout,
	}
}

// Convert renders src to HTML, sanitizes it when a policy is set and wraps
// it in the layout when one is set.
func (g *Goldmark) Convert(src string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConvertFailed, err)
	}

	fragment := buf.String()
	if g.policy != nil {
		fragment = g.policy.Sanitize(fragment)
	}

	if g.layout == nil {
		return fragment, nil
	}

	var out bytes.Buffer
	data := map[string]any{
		"Content": template.HTML(fragment), //nolint:gosec // fragment comes from goldmark's escaping renderer
	}
	if err := g.layout.Execute(&out, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLayoutFailed, err)
	}
	return out.String(), nil
}
