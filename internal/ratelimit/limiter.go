package ratelimit

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether one more call under key is allowed right now.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Close() error
}

const keySeparator = "|"

// Key joins an operation name and a client identity into a limiter key.
func Key(operation, client string) string {
	return operation + keySeparator + client
}

func operationOf(key string) string {
	operation, _, _ := strings.Cut(key, keySeparator)
	return operation
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter keeps an in-process token bucket per key. Buckets idle for
// longer than IdleTTL are dropped.
type KeyedLimiter struct {
	buckets   map[string]*bucket
	overrides map[string]RateLimitConfig
	mu        sync.Mutex
	defaults  RateLimitConfig
	now       func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
	IdleTTL           time.Duration
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		IdleTTL:           10 * time.Minute,
	}
}

// NewKeyedLimiter starts a background sweep when config.IdleTTL is set. Close
// stops it.
func NewKeyedLimiter(config RateLimitConfig) *KeyedLimiter {
	l := &KeyedLimiter{
		buckets:   make(map[string]*bucket),
		overrides: make(map[string]RateLimitConfig),
		defaults:  config,
		now:       time.Now,
		stop:      make(chan struct{}),
	}

	if config.IdleTTL > 0 {
		go l.sweepEvery(config.IdleTTL / 2)
	}

	return l
}

func (l *KeyedLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, exists := l.buckets[key]
	if !exists {
		cfg, ok := l.overrides[operationOf(key)]
		if !ok {
			cfg = l.defaults
		}
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize)}
		l.buckets[key] = b
	}
	b.lastSeen = l.now()

	return b.limiter
}

// SetLimit overrides the bucket size for every client of one operation.
// Buckets already handed out for that operation are reset.
func (l *KeyedLimiter) SetLimit(operation string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.overrides[operation] = RateLimitConfig{RequestsPerSecond: rps, BurstSize: burst}
	for key := range l.buckets {
		if operationOf(key) == operation {
			delete(l.buckets, key)
		}
	}
}

func (l *KeyedLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.GetLimiter(key).Allow(), nil
}

// Sweep drops buckets not used since idle ago and reports how many remain.
func (l *KeyedLimiter) Sweep(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
	return len(l.buckets)
}

func (l *KeyedLimiter) sweepEvery(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Sweep(l.defaults.IdleTTL)
		case <-l.stop:
			return
		}
	}
}

func (l *KeyedLimiter) Close() error {
	l.stopOnce.Do(func() { close(l.stop) })
	return nil
}

// Chain allows a call only when every limiter allows it. Evaluation stops at
// the first refusal or error.
type Chain []Limiter

func (c Chain) Allow(ctx context.Context, key string) (bool, error) {
	for _, l := range c {
		ok, err := l.Allow(ctx, key)
		if err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}

func (c Chain) Close() error {
	var firstErr error
	for _, l := range c {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
