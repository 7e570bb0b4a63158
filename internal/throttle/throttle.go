package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/bloghub/bloghub/internal/apperr"
	"github.com/bloghub/bloghub/internal/models"
)

const (
	msgUnregistered = "Access limit reached for unregistered users. Please register to get more access."
	msgFree         = "Access limit reached for free users. Upgrade to a paid plan for unlimited access."
	msgDefault      = "Request limit exceeded."
)

// Throttle admits or rejects reads on public blog endpoints using a
// rolling per-subject window. The read-modify-write on the counter is
// not atomic; concurrent requests from one subject may under-count.
// The limiter is advisory, so that is accepted.
type Throttle struct {
	store    CounterStore
	policies map[Tier]Policy
	now      func() time.Time
}

func New(store CounterStore, policies map[Tier]Policy) *Throttle {
	return &Throttle{
		store:    store,
		policies: policies,
		now:      time.Now,
	}
}

// SetClock overrides the clock, for tests.
func (t *Throttle) SetClock(now func() time.Time) {
	t.now = now
}

// Key builds the counter key for a subject within a tier.
func Key(tier Tier, subject string) string {
	return fmt.Sprintf("blog_access:%s:%s", tier, subject)
}

// Check evaluates one request. user may be nil (anonymous); clientID is
// the fallback subject identifier, normally the client IP. Returns nil
// to admit, a Throttled error to reject. The tier classified here is
// used consistently for the whole evaluation.
func (t *Throttle) Check(ctx context.Context, user *models.User, clientID string) error {
	tier := Classify(user)

	policy, ok := t.policies[tier]
	if !ok || policy.Unlimited() {
		// Paid subjects never touch the counter store.
		return nil
	}

	subject := clientID
	if user != nil {
		subject = user.ID.String()
	}
	key := Key(tier, subject)

	now := t.now()

	rec, found, err := t.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("throttle: read counter: %w", err)
	}
	if !found {
		rec = Record{Count: 0, WindowStart: now}
	}

	// Rolling window: measured from the subject's first request, not
	// calendar-aligned.
	if now.Sub(rec.WindowStart) > policy.Window {
		rec = Record{Count: 0, WindowStart: now}
	}

	if rec.Count < policy.Limit {
		rec.Count++
		if err := t.store.Set(ctx, key, rec, policy.Window); err != nil {
			return fmt.Errorf("throttle: write counter: %w", err)
		}
		return nil
	}

	return apperr.Throttled(rejectionMessage(tier))
}

func rejectionMessage(tier Tier) string {
	switch tier {
	case TierUnregistered:
		return msgUnregistered
	case TierFree:
		return msgFree
	default:
		return msgDefault
	}
}
