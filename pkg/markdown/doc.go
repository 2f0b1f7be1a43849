// Package markdown converts notification bodies from markdown to HTML.
//
// The default Converter is built on goldmark with GitHub Flavored Markdown
// (tables, strikethrough, autolinks) and a button syntax for call-to-action
// links:
//
//	[!button|View transaction](https://etherscan.io/tx/0xabc)
//
// renders as
//
//	<a href="https://etherscan.io/tx/0xabc" class="btn">View transaction</a>
//
// Raw HTML inside the markdown source is omitted. A bluemonday policy can be
// applied to the generated HTML and the fragment can be wrapped in an
// html/template layout that receives it as {{.Content}}:
//
//	layout := template.Must(template.New("base").Parse(`<html><body>{{.Content}}</body></html>`))
//	conv := markdown.New(
//		markdown.WithPolicy(sanitizer.EmailPolicy()),
//		markdown.WithLayout(layout),
//	)
//	html, err := conv.Convert("**Alert** fired")
//
// Convert is deterministic and a Converter is safe for concurrent use once built.
package markdown
