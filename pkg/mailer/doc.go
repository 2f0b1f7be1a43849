// Package mailer composes alert notifications from templates and hands them to
// a delivery channel.
//
// # Architecture
//
//   - Notifier: immutable template + metadata; renders and composes payloads
//   - Payload: the composed message (subject, HTML, text, sender, recipients)
//   - Sender: interface that delivery channels implement
//
// Rendering is transport independent: a Notifier never touches the network
// and can be tested without constructing any client.
//
// # Usage
//
//	n, err := mailer.NewNotifier(mailer.Content{
//		Subject: "Large transfer detected",
//		Body:    "**${amount} ETH** moved in [${tx_hash}](https://etherscan.io/tx/${tx_hash})",
//		From:    "Monitor <monitor@example.com>",
//		To:      []string{"ops@example.com"},
//	})
//	if err != nil {
//		return err // wraps ErrInvalidAddress or ErrNoRecipient
//	}
//
//	sender, _ := smtp.New(smtpCfg)
//	err = n.Notify(ctx, sender, map[string]string{
//		"amount":  "1200",
//		"tx_hash": "0xabc",
//	})
//
// # Rendering
//
// Rendering substitutes ${name} placeholders first (see package placeholder)
// and converts the result from markdown to HTML second, so inserted values are
// never treated as template syntax. Placeholders without a value stay in the
// output verbatim. Rendering is deterministic: the same variables always give
// the same bytes.
//
// If the converter fails, the notifier logs a warning and delivers the
// substituted markdown as is, so a broken layout never blocks an alert.
//
// # Templates on disk
//
// LoadContent reads a definition from a markdown file with YAML frontmatter:
//
//	---
//	subject: Monitor ${monitor} triggered
//	from: monitor@example.com
//	to: [ops@example.com, oncall@example.com]
//	tag: alerts
//	---
//	Block **${block}** matched ${rule}.
//
// # Errors
//
//   - ErrInvalidAddress: sender or recipient failed RFC 5322 parsing
//   - ErrNoRecipient: empty recipient list
//   - ErrInvalidPayload: payload missing required fields
//   - ErrSendFailed: the sender returned an error
//   - ErrTemplateNotFound: template file not found
//   - ErrInvalidFrontmatter: invalid YAML frontmatter
//   - ErrInvalidConfig: transport misconfiguration
package mailer
