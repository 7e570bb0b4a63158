package throttle

import (
	"time"

	"github.com/bloghub/bloghub/internal/models"
)

type Tier string

const (
	TierUnregistered Tier = "unregistered"
	TierFree         Tier = "free"
	TierPaid         Tier = "paid"
)

// Classify maps a request's user to a tier. Tiers are derived per
// request, never persisted.
func Classify(user *models.User) Tier {
	if user == nil {
		return TierUnregistered
	}
	if user.IsPaid {
		return TierPaid
	}

	return TierFree
}

// Policy is the quota for one tier. Limit < 0 means unlimited.
type Policy struct {
	Limit  int
	Window time.Duration
}

func (p Policy) Unlimited() bool {
	return p.Limit < 0
}

// NewPolicies builds the tier policy table. Paid is always unlimited.
func NewPolicies(window time.Duration, unregisteredLimit, freeLimit int) map[Tier]Policy {
	return map[Tier]Policy{
		TierUnregistered: {Limit: unregisteredLimit, Window: window},
		TierFree:         {Limit: freeLimit, Window: window},
		TierPaid:         {Limit: -1, Window: window},
	}
}

// DefaultPolicies: unregistered 3 and free 10 reads per rolling 30 days.
func DefaultPolicies() map[Tier]Policy {
	return NewPolicies(30*24*time.Hour, 3, 10)
}
