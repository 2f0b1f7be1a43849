package logger

import (
	"context"
	"log/slog"
)

type notificationIDKey struct{}

// WithNotificationID stores the payload ID of the notification being delivered.
func WithNotificationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, notificationIDKey{}, id)
}

// NotificationID returns the ID stored by WithNotificationID.
func NotificationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(notificationIDKey{}).(string)
	return id, ok && id != ""
}

// NotificationIDExtractor adds "notification_id" to records logged with a
// context that carries one.
func NotificationIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := NotificationID(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("notification_id", id), true
}
