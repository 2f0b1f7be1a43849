package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertmail/pkg/dedup"
	"github.com/dmitrymomot/alertmail/pkg/dispatch"
	"github.com/dmitrymomot/alertmail/pkg/logger"
	"github.com/dmitrymomot/alertmail/pkg/mailer"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, p *mailer.Payload) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type failingStore struct{}

func (failingStore) Seen(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("store down")
}

func (failingStore) Forget(context.Context, string) error {
	return errors.New("store down")
}

func testPayload(t *testing.T, subject string) *mailer.Payload {
	t.Helper()

	p, err := mailer.NewPayload(mailer.PayloadParams{
		Subject: subject,
		HTML:    "<p>body</p>\n",
		Text:    "body",
		From:    "Monitor <monitor@example.com>",
		To:      []string{"ops@example.com"},
	})
	require.NoError(t, err)
	return p
}

func TestDispatcher_Send(t *testing.T) {
	t.Parallel()

	t.Run("delivers to every channel", func(t *testing.T) {
		t.Parallel()

		p := testPayload(t, "Alert")
		a, b := new(MockSender), new(MockSender)
		a.On("Send", mock.Anything, p).Return(nil).Once()
		b.On("Send", mock.Anything, p).Return(nil).Once()

		d := dispatch.New(dispatch.WithChannel("a", a), dispatch.WithChannel("b", b))
		require.NoError(t, d.Send(context.Background(), p))

		a.AssertExpectations(t)
		b.AssertExpectations(t)
	})

	t.Run("one failure does not stop others", func(t *testing.T) {
		t.Parallel()

		p := testPayload(t, "Alert")
		boom := errors.New("boom")
		bad, good := new(MockSender), new(MockSender)
		bad.On("Send", mock.Anything, p).Return(boom).Once()
		good.On("Send", mock.Anything, p).Return(nil).Once()

		d := dispatch.New(dispatch.WithChannel("bad", bad), dispatch.WithChannel("good", good))
		err := d.Send(context.Background(), p)

		require.Error(t, err)
		assert.ErrorIs(t, err, dispatch.ErrDeliveryFailed)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "bad: boom")
		good.AssertExpectations(t)
	})

	t.Run("no channels", func(t *testing.T) {
		t.Parallel()

		err := dispatch.New().Send(context.Background(), testPayload(t, "Alert"))
		assert.ErrorIs(t, err, dispatch.ErrNoChannels)
	})

	t.Run("nil payload", func(t *testing.T) {
		t.Parallel()

		s := new(MockSender)
		err := dispatch.New(dispatch.WithChannel("s", s)).Send(context.Background(), nil)
		assert.ErrorIs(t, err, mailer.ErrInvalidPayload)
		s.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("nil sender ignored", func(t *testing.T) {
		t.Parallel()

		d := dispatch.New(dispatch.WithChannel("nil", nil))
		assert.Empty(t, d.Channels())
	})

	t.Run("notification id in context", func(t *testing.T) {
		t.Parallel()

		p := testPayload(t, "Alert")
		s := new(MockSender)
		s.On("Send", mock.MatchedBy(func(ctx context.Context) bool {
			id, ok := logger.NotificationID(ctx)
			return ok && id == p.ID()
		}), p).Return(nil).Once()

		require.NoError(t, dispatch.New(dispatch.WithChannel("s", s)).Send(context.Background(), p))
		s.AssertExpectations(t)
	})
}

func TestDispatcher_Timeout(t *testing.T) {
	t.Parallel()

	slow := mailer.SenderFunc(func(ctx context.Context, _ *mailer.Payload) error {
		<-ctx.Done()
		return ctx.Err()
	})

	d := dispatch.New(
		dispatch.WithChannel("slow", slow),
		dispatch.WithTimeout(20*time.Millisecond),
	)
	err := d.Send(context.Background(), testPayload(t, "Alert"))

	assert.ErrorIs(t, err, dispatch.ErrDeliveryFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDispatcher_Concurrency(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	s := mailer.SenderFunc(func(context.Context, *mailer.Payload) error {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return nil
	})

	d := dispatch.New(
		dispatch.WithChannel("1", s),
		dispatch.WithChannel("2", s),
		dispatch.WithChannel("3", s),
		dispatch.WithChannel("4", s),
		dispatch.WithConcurrency(1),
	)
	require.NoError(t, d.Send(context.Background(), testPayload(t, "Alert")))
	assert.Equal(t, int32(1), peak.Load())
	assert.Equal(t, []string{"1", "2", "3", "4"}, d.Channels())
}

func TestDispatcher_Suppression(t *testing.T) {
	t.Parallel()

	t.Run("duplicate skipped within window", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		s := mailer.SenderFunc(func(context.Context, *mailer.Payload) error {
			calls.Add(1)
			return nil
		})
		d := dispatch.New(
			dispatch.WithChannel("s", s),
			dispatch.WithSuppression(dedup.NewMemory(), time.Minute),
		)

		require.NoError(t, d.Send(context.Background(), testPayload(t, "Alert")))
		require.NoError(t, d.Send(context.Background(), testPayload(t, "Alert")))
		require.NoError(t, d.Send(context.Background(), testPayload(t, "Other")))

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("store failure delivers anyway", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		s := new(MockSender)
		p := testPayload(t, "Alert")
		s.On("Send", mock.Anything, p).Return(nil).Once()

		d := dispatch.New(
			dispatch.WithChannel("s", s),
			dispatch.WithSuppression(failingStore{}, time.Minute),
			dispatch.WithLogger(log),
		)
		require.NoError(t, d.Send(context.Background(), p))
		s.AssertExpectations(t)
		assert.Contains(t, buf.String(), "duplicate check failed")
	})
}

func TestDispatcher_SuppressionAfterFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	t.Run("total failure allows retry", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		s := mailer.SenderFunc(func(context.Context, *mailer.Payload) error {
			if calls.Add(1) == 1 {
				return boom
			}
			return nil
		})
		d := dispatch.New(
			dispatch.WithChannel("s", s),
			dispatch.WithSuppression(dedup.NewMemory(), time.Minute),
		)

		err := d.Send(context.Background(), testPayload(t, "Alert"))
		require.ErrorIs(t, err, dispatch.ErrDeliveryFailed)

		require.NoError(t, d.Send(context.Background(), testPayload(t, "Alert")))
		assert.Equal(t, int32(2), calls.Load())

		require.NoError(t, d.Send(context.Background(), testPayload(t, "Alert")))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("partial failure keeps suppression", func(t *testing.T) {
		t.Parallel()

		var good atomic.Int32
		d := dispatch.New(
			dispatch.WithChannel("bad", mailer.SenderFunc(func(context.Context, *mailer.Payload) error {
				return boom
			})),
			dispatch.WithChannel("good", mailer.SenderFunc(func(context.Context, *mailer.Payload) error {
				good.Add(1)
				return nil
			})),
			dispatch.WithSuppression(dedup.NewMemory(), time.Minute),
		)

		require.ErrorIs(t, d.Send(context.Background(), testPayload(t, "Alert")), dispatch.ErrDeliveryFailed)
		require.NoError(t, d.Send(context.Background(), testPayload(t, "Alert")))
		assert.Equal(t, int32(1), good.Load())
	})
}
