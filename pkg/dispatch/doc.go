// Package dispatch delivers composed notifications to one or more channels.
//
// A Dispatcher is itself a mailer.Sender, so a Notifier can hand payloads to it
// directly:
//
//	d := dispatch.New(
//		dispatch.WithChannel("smtp", smtpClient),
//		dispatch.WithChannel("resend", resendSender),
//		dispatch.WithTimeout(10*time.Second),
//		dispatch.WithSuppression(dedup.NewMemory(), 15*time.Minute),
//		dispatch.WithLogger(log),
//	)
//	err := notifier.Notify(ctx, d, vars)
//
// Channels run concurrently, each under its own timeout. One failing channel
// does not stop the others; all failures are joined into the returned error.
// With suppression enabled, a payload whose ID was already dispatched inside
// the window is skipped. Payload IDs are derived from content, so the same
// alert rendered twice maps to the same key.
// When every channel fails the key is released, so a retry is delivered.
package dispatch
