// Package postmark delivers notifications through Postmark's transactional API.
//
//	sender, err := postmark.New(postmark.Config{
//		ServerToken:  os.Getenv("POSTMARK_SERVER_TOKEN"),
//		AccountToken: os.Getenv("POSTMARK_ACCOUNT_TOKEN"),
//	})
//
// Open tracking and HTML-only link tracking are enabled when TrackOpens is set.
// Postmark reports some failures with a non-zero ErrorCode in an otherwise
// successful response; those are returned as errors too.
package postmark
