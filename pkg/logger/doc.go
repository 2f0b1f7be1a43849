// Package logger provides structured logging with context extraction and
// optional Sentry integration.
//
// It extends log/slog with two capabilities: attributes pulled from the
// context on every call, and fan-out of warnings and errors to Sentry.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "info"}, logger.NotificationIDExtractor)
//
//	ctx = logger.WithNotificationID(ctx, payload.ID())
//	log.InfoContext(ctx, "notification delivered", slog.String("channel", "smtp"))
//	// {"level":"INFO","msg":"notification delivered","channel":"smtp","notification_id":"..."}
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    "warn",
//	}, logger.NotificationIDExtractor)
//
// Errors create Sentry issues; warnings (for example a markdown conversion that
// fell back to plain text) are stored as Sentry logs. With an empty DSN the
// logger writes to stdout only, so the same code runs in development.
//
// # Context Extractors
//
// A ContextExtractor returns an attribute for the current context:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every record. Return false to add nothing.
// ContextHandler applies them to any slog.Handler.
package logger
