package dedup

import (
	"context"
	"time"
)

// Store tracks delivered keys.
type Store interface {
	// Seen reports whether key was recorded within window. When it was not,
	// Seen records it before returning false. A non-positive window disables
	// suppression: Seen always returns false.
	Seen(ctx context.Context, key string, window time.Duration) (bool, error)

	// Forget drops key so the next Seen records it afresh.
	// Forgetting an unknown key is not an error.
	Forget(ctx context.Context, key string) error
}
