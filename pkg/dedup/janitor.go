package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// scheduleParser accepts standard five-field expressions and descriptors
// such as "@every 5m" or "@hourly".
var scheduleParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ParseSchedule validates a purge schedule expression.
func ParseSchedule(expr string) (cron.Schedule, error) {
	s, err := scheduleParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}
	return s, nil
}

// RunJanitor purges expired keys on schedule until ctx is done.
// It blocks; run it in its own goroutine. A schedule that never fires again
// (Next returns the zero time) leaves the janitor idle until ctx is done.
func (m *Memory) RunJanitor(ctx context.Context, schedule cron.Schedule, onPurge func(removed int)) {
	for {
		now := time.Now()
		next := schedule.Next(now)
		if next.IsZero() {
			<-ctx.Done()
			return
		}
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			removed := m.Purge()
			if onPurge != nil {
				onPurge(removed)
			}
		}
	}
}
