// Package smtp delivers notifications over plain SMTP.
//
// Three connection modes are supported: "starttls" (dial then upgrade),
// "tls" (implicit TLS, usually port 465) and "plain" (no encryption, local
// relays and tests only). Authentication uses PLAIN and is skipped when no
// username is configured.
//
// Messages are sent as multipart/alternative with the plain-text part first
// and the HTML part second. Every recipient gets its own RCPT command, and the
// Message-ID is derived from the payload ID so retries of the same alert carry
// the same identifier.
//
//	client, err := smtp.New(smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     587,
//		Username: "alerts",
//		Password: os.Getenv("SMTP_PASSWORD"),
//		TLSMode:  smtp.TLSModeStartTLS,
//	})
//	if err != nil {
//		return err
//	}
//	err = notifier.Notify(ctx, client, vars)
package smtp
