// Package ratelimit provides per-client rate limiting using a token bucket
// algorithm. Each client gets its own bucket; buckets refill continuously
// at the configured rate and idle buckets are evicted.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a single client's token bucket. Tokens refill continuously at
// refillRate per second up to capacity.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Limiter tracks one token bucket per client key.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	lastAccess map[string]time.Time

	rps   float64
	burst int

	maxIdle time.Duration
	nowFunc func() time.Time
}

// NewLimiter creates a limiter allowing rps sustained requests per second
// per client with the given burst capacity.
func NewLimiter(rps float64, burst int) *Limiter {
	return &Limiter{
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
		rps:        rps,
		burst:      burst,
		maxIdle:    5 * time.Minute,
		nowFunc:    time.Now,
	}
}

// Allow reports whether the client identified by key may proceed, consuming
// one token if so.
func (l *Limiter) Allow(key string) bool {
	now := l.nowFunc()

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(l.burst, l.rps)
		b.lastRefill = now
		l.buckets[key] = b
	}
	l.lastAccess[key] = now
	l.mu.Unlock()

	return b.allow(now)
}

// Evict drops buckets that have not been used within the idle window. The
// server runs this periodically so one-off clients do not accumulate.
func (l *Limiter) Evict() {
	cutoff := l.nowFunc().Add(-l.maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Size returns the number of tracked clients.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
