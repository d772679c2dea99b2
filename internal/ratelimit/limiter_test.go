package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLimiterBurst(t *testing.T) {
	l := NewKeyedLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "suggest_hotels|10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "suggest_hotels|10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "suggest_hotels|10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok, "buckets are per key")
}

func TestKeyedLimiterSetLimit(t *testing.T) {
	l := NewKeyedLimiter(DefaultConfig())
	defer l.Close()
	ctx := context.Background()

	first := l.GetLimiter(Key("suggest_flights", "10.0.0.1"))
	l.SetLimit("suggest_flights", 0.001, 1)
	assert.NotSame(t, first, l.GetLimiter(Key("suggest_flights", "10.0.0.1")), "existing buckets are reset")

	ok, _ := l.Allow(ctx, Key("suggest_flights", "10.0.0.1"))
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, Key("suggest_flights", "10.0.0.1"))
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, Key("suggest_flights", "10.0.0.2"))
	assert.True(t, ok, "override applies per client")

	for i := 0; i < 5; i++ {
		ok, _ = l.Allow(ctx, Key("suggest_hotels", "10.0.0.1"))
		assert.True(t, ok, "other operations keep the defaults")
	}
}

func TestKeyedLimiterSweepDropsIdleBuckets(t *testing.T) {
	l := NewKeyedLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})
	defer l.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		l.GetLimiter(Key("suggest_hotels", strconv.Itoa(i)))
	}
	require.Len(t, l.buckets, 1000)

	now = now.Add(5 * time.Minute)
	l.GetLimiter(Key("suggest_hotels", "0"))

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, l.Sweep(10*time.Minute))
	assert.Contains(t, l.buckets, Key("suggest_hotels", "0"))

	now = now.Add(10 * time.Minute)
	assert.Equal(t, 0, l.Sweep(10*time.Minute))
}

func TestKeyedLimiterBackgroundSweep(t *testing.T) {
	l := NewKeyedLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1, IdleTTL: 20 * time.Millisecond})
	defer l.Close()

	l.GetLimiter(Key("suggest_hotels", "10.0.0.1"))

	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.buckets) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestKeyedLimiterCloseIsIdempotent(t *testing.T) {
	l := NewKeyedLimiter(DefaultConfig())
	assert.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}

func TestKey(t *testing.T) {
	key := Key("suggest_hotels", "192.0.2.1")
	assert.Equal(t, "suggest_hotels|192.0.2.1", key)
	assert.Equal(t, "suggest_hotels", operationOf(key))
	assert.Equal(t, "/api/v1/tools", operationOf("/api/v1/tools"))
}

type stubLimiter struct {
	allow  bool
	err    error
	calls  int
	closed bool
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	s.calls++
	return s.allow, s.err
}

func (s *stubLimiter) Close() error {
	s.closed = true
	return s.err
}

func TestChain(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		first      *stubLimiter
		second     *stubLimiter
		wantOK     bool
		wantErr    bool
		wantSecond int
	}{
		{name: "both allow", first: &stubLimiter{allow: true}, second: &stubLimiter{allow: true}, wantOK: true, wantSecond: 1},
		{name: "first refuses", first: &stubLimiter{}, second: &stubLimiter{allow: true}, wantOK: false, wantSecond: 0},
		{name: "second refuses", first: &stubLimiter{allow: true}, second: &stubLimiter{}, wantOK: false, wantSecond: 1},
		{name: "first errors", first: &stubLimiter{err: errors.New("down")}, second: &stubLimiter{allow: true}, wantErr: true, wantSecond: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Chain{tt.first, tt.second}.Allow(ctx, "k")
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantSecond, tt.second.calls)
		})
	}
}

func TestChainCloseClosesAll(t *testing.T) {
	a := &stubLimiter{err: errors.New("first")}
	b := &stubLimiter{}
	err := Chain{a, b}.Close()
	assert.EqualError(t, err, "first")
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestNoOpLimiter(t *testing.T) {
	l := NewNoOpLimiter()
	for i := 0; i < 100; i++ {
		ok, err := l.Allow(context.Background(), "k")
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.NoError(t, l.Close())
}

func TestWindowKey(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 10, 0, time.UTC)

	a := windowKey("suggest_hotels|1.2.3.4", base, time.Minute)
	b := windowKey("suggest_hotels|1.2.3.4", base.Add(30*time.Second), time.Minute)
	c := windowKey("suggest_hotels|1.2.3.4", base.Add(2*time.Minute), time.Minute)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "quota:suggest_hotels|1.2.3.4:")
}

func newTestQuota(t *testing.T, limit int64) (*RedisQuota, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	cfg := DefaultRedisConfig()
	cfg.Host = mr.Host()
	cfg.Port = mr.Port()
	cfg.Limit = limit
	cfg.Window = time.Minute

	q, err := NewRedisQuota(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { q.Close() })
	return q, mr
}

func TestRedisQuota(t *testing.T) {
	q, mr := newTestQuota(t, 2)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 10, 0, time.UTC)
	q.now = func() time.Time { return now }
	key := Key("suggest_flights", "10.0.0.1")

	for i := 0; i < 2; i++ {
		ok, err := q.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := q.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = q.Allow(ctx, Key("suggest_flights", "10.0.0.2"))
	require.NoError(t, err)
	assert.True(t, ok, "quota is per key")

	redisKey := windowKey(key, now, time.Minute)
	count, err := mr.Get(redisKey)
	require.NoError(t, err)
	assert.Equal(t, "3", count)
	assert.Equal(t, time.Minute, mr.TTL(redisKey))

	now = now.Add(time.Minute)
	ok, err = q.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok, "next window starts fresh")

	mr.FastForward(time.Minute)
	assert.False(t, mr.Exists(redisKey), "expired windows leave nothing behind")
}

func TestRedisQuotaReportsUnavailableRedis(t *testing.T) {
	q, mr := newTestQuota(t, 2)
	mr.Close()

	ok, err := q.Allow(context.Background(), Key("suggest_hotels", "10.0.0.1"))
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewRedisQuotaFailsWithoutRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := DefaultRedisConfig()
	cfg.Host = mr.Host()
	cfg.Port = mr.Port()
	mr.Close()

	_, err := NewRedisQuota(cfg)
	assert.Error(t, err)
}
