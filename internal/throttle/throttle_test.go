package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/bloghub/bloghub/internal/apperr"
	"github.com/bloghub/bloghub/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyStore counts store traffic so tests can assert paid subjects never
// touch the counter store.
type spyStore struct {
	inner CounterStore
	gets  int
	sets  int
}

func (s *spyStore) Get(ctx context.Context, key string) (Record, bool, error) {
	s.gets++
	return s.inner.Get(ctx, key)
}

func (s *spyStore) Set(ctx context.Context, key string, rec Record, ttl time.Duration) error {
	s.sets++
	return s.inner.Set(ctx, key, rec, ttl)
}

func newTestThrottle() (*Throttle, *MemoryStore, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store := NewMemoryStore()
	store.SetClock(clock)

	t := New(store, DefaultPolicies())
	t.SetClock(clock)

	return t, store, &now
}

func TestClassify(t *testing.T) {
	assert.Equal(t, TierUnregistered, Classify(nil))
	assert.Equal(t, TierFree, Classify(&models.User{IsPaid: false}))
	assert.Equal(t, TierPaid, Classify(&models.User{IsPaid: true}))
}

func TestPaidAlwaysAdmitted(t *testing.T) {
	th, store, _ := newTestThrottle()
	spy := &spyStore{inner: store}
	th.store = spy

	paid := &models.User{ID: uuid.New(), IsPaid: true}

	for i := 0; i < 50; i++ {
		require.NoError(t, th.Check(context.Background(), paid, "1.2.3.4"))
	}

	assert.Zero(t, spy.gets, "paid subjects must not read the counter store")
	assert.Zero(t, spy.sets, "paid subjects must not write the counter store")
}

func TestUnregisteredLimit(t *testing.T) {
	th, _, _ := newTestThrottle()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, th.Check(ctx, nil, "10.0.0.1"), "request %d should be admitted", i+1)
	}

	err := th.Check(ctx, nil, "10.0.0.1")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindThrottled))
	assert.Contains(t, err.Error(), "unregistered users")
	assert.Contains(t, err.Error(), "register")
}

func TestFreeLimit(t *testing.T) {
	th, _, _ := newTestThrottle()
	ctx := context.Background()
	free := &models.User{ID: uuid.New(), IsPaid: false}

	for i := 0; i < 10; i++ {
		require.NoError(t, th.Check(ctx, free, "10.0.0.1"), "request %d should be admitted", i+1)
	}

	err := th.Check(ctx, free, "10.0.0.1")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindThrottled))
	assert.Contains(t, err.Error(), "free users")
	assert.Contains(t, err.Error(), "paid plan")
}

func TestWindowResetStartsCountAtOne(t *testing.T) {
	th, store, now := newTestThrottle()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, th.Check(ctx, nil, "10.0.0.2"))
	}
	require.Error(t, th.Check(ctx, nil, "10.0.0.2"))

	// Past the rolling window the next request is admitted and the
	// stored count restarts at 1, not 0.
	*now = now.Add(30*24*time.Hour + time.Second)

	require.NoError(t, th.Check(ctx, nil, "10.0.0.2"))

	rec, found, err := store.Get(ctx, Key(TierUnregistered, "10.0.0.2"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, rec.Count)
	assert.Equal(t, *now, rec.WindowStart)
}

func TestSubjectsAreIsolated(t *testing.T) {
	th, _, _ := newTestThrottle()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, th.Check(ctx, nil, "10.0.0.3"))
	}
	require.Error(t, th.Check(ctx, nil, "10.0.0.3"))

	// A different client identifier has its own window.
	require.NoError(t, th.Check(ctx, nil, "10.0.0.4"))
}

func TestAuthenticatedSubjectKeyedByUserID(t *testing.T) {
	th, store, _ := newTestThrottle()
	ctx := context.Background()
	free := &models.User{ID: uuid.New(), IsPaid: false}

	require.NoError(t, th.Check(ctx, free, "10.0.0.5"))

	_, found, err := store.Get(ctx, Key(TierFree, free.ID.String()))
	require.NoError(t, err)
	assert.True(t, found, "free users are keyed by user id, not client IP")

	_, found, err = store.Get(ctx, Key(TierFree, "10.0.0.5"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheEvictionResetsQuota(t *testing.T) {
	// The store is best-effort: an evicted record silently grants a
	// fresh window. Accepted behavior, pinned here.
	th, _, _ := newTestThrottle()
	fresh := NewMemoryStore()
	th.store = fresh
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, th.Check(ctx, nil, "10.0.0.6"))
	}
	require.Error(t, th.Check(ctx, nil, "10.0.0.6"))

	th.store = NewMemoryStore() // simulated cache flush
	require.NoError(t, th.Check(ctx, nil, "10.0.0.6"))
}
