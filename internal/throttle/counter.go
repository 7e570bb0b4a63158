package throttle

import (
	"context"
	"time"
)

// Record is the rolling-window state for one throttle key.
type Record struct {
	Count       int       `json:"count"`
	WindowStart time.Time `json:"window_start"`
}

// CounterStore is a best-effort cache of throttle records. Entries not
// rewritten within their TTL are treated as absent; an eviction silently
// resets a subject's quota early, which is accepted.
type CounterStore interface {
	Get(ctx context.Context, key string) (Record, bool, error)
	Set(ctx context.Context, key string, rec Record, ttl time.Duration) error
}
