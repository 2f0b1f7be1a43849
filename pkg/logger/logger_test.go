package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNewHandler_RespectsLevelAndFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, Config{Level: "warn", Format: "json"}))

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	rec := decodeLine(t, &buf)
	assert.Equal(t, "kept", rec["msg"])

	buf.Reset()
	text := slog.New(newHandler(&buf, Config{Format: "TEXT"}))
	text.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestDecorator_NotificationIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewContextHandler(newHandler(&buf, Config{}), NotificationIDExtractor, nil))

	ctx := WithNotificationID(context.Background(), "abc-123")
	log.InfoContext(ctx, "delivered")
	rec := decodeLine(t, &buf)
	assert.Equal(t, "abc-123", rec["notification_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "no id")
	rec = decodeLine(t, &buf)
	assert.NotContains(t, rec, "notification_id")
}

func TestDecorator_WithAttrsKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewContextHandler(newHandler(&buf, Config{}), NotificationIDExtractor)).
		With(slog.String("channel", "smtp"))

	log.InfoContext(WithNotificationID(context.Background(), "id-1"), "sent")
	rec := decodeLine(t, &buf)
	assert.Equal(t, "smtp", rec["channel"])
	assert.Equal(t, "id-1", rec["notification_id"])
}

func TestNotificationID_Empty(t *testing.T) {
	t.Parallel()

	_, ok := NotificationID(context.Background())
	assert.False(t, ok)

	_, ok = NotificationID(WithNotificationID(context.Background(), ""))
	assert.False(t, ok)
}

func TestFanoutHandler_FansOut(t *testing.T) {
	t.Parallel()

	var debugBuf, errorBuf bytes.Buffer
	h := fanoutHandler{
		newHandler(&debugBuf, Config{Level: "debug"}),
		newHandler(&errorBuf, Config{Level: "error"}),
	}
	log := slog.New(h)

	log.Debug("debug only")
	assert.NotEmpty(t, debugBuf.String())
	assert.Empty(t, errorBuf.String())

	debugBuf.Reset()
	log.Error("both")
	assert.NotEmpty(t, debugBuf.String())
	assert.NotEmpty(t, errorBuf.String())

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewWithSentry_NoDSNFallsBackToStdout(t *testing.T) {
	t.Parallel()

	log := NewWithSentry(SentryConfig{})
	require.NotNil(t, log)
	assert.IsType(t, &ContextHandler{}, log.Handler())
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := NewNope()
	require.NotNil(t, log)
	log.Error("discarded")
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestFanoutHandler_ContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := fanoutHandler{
		failingHandler{newHandler(&bytes.Buffer{}, Config{})},
		newHandler(&buf, Config{}),
	}

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"msg"`)
}

func TestContextHandler_RecordAttrWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewContextHandler(newHandler(&buf, Config{}), NotificationIDExtractor))

	ctx := WithNotificationID(context.Background(), "from-ctx")
	log.InfoContext(ctx, "explicit", slog.String("notification_id", "explicit"))

	out := buf.String()
	assert.Contains(t, out, `"notification_id":"explicit"`)
	assert.NotContains(t, out, "from-ctx")
}
