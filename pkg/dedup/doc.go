// Package dedup records which notifications were already delivered so that
// an alert storm does not send the same message over and over.
//
// A Store answers one question atomically: was this key seen inside the
// window? If not, the key is recorded and the caller proceeds.
//
//	store := dedup.NewMemory()
//	seen, err := store.Seen(ctx, payload.ID(), 10*time.Minute)
//	if err == nil && seen {
//		return nil // already delivered
//	}
//
// Memory keeps state in process. Expired keys stay until purged; run a
// janitor for long-lived processes:
//
//	schedule, err := dedup.ParseSchedule("@every 5m")
//	go store.RunJanitor(ctx, schedule, nil)
//
// Redis shares state between replicas and expires keys itself:
//
//	client, err := dedup.OpenRedis(ctx, "redis://localhost:6379/0")
//	store := dedup.NewRedis(client, "alertmail:sent")
package dedup
