// Package sanitizer cleans HTML produced for notification emails.
//
// EmailPolicy keeps the elements a markdown body renders to (paragraphs,
// headings, lists, tables, code, links and call-to-action buttons) and drops
// everything else, including scripts, inline styles, images and event handlers.
//
//	html := sanitizer.SanitizeEmailHTML(rendered)
//	text := sanitizer.StripHTML(rendered)
//
// The policy can also be attached to the markdown converter:
//
//	conv := markdown.New(markdown.WithPolicy(sanitizer.EmailPolicy()))
package sanitizer
