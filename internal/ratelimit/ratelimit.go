package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for throttling keyed operations
type Limiter interface {
	Wait(ctx context.Context, key string) error
}

// InMemoryLimiter is an implementation of Limiter stored in memory,
// keyed by endpoint path
type InMemoryLimiter struct {
	keys map[string]*rate.Limiter
	mu   sync.Mutex
	r    rate.Limit // Rate of adding tokens (e.g., 1 token every second)
	b    int        // Bucket size (e.g., can issue 5 calls in a row)
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(2, time.Second, 5) -> allows 2 calls per second per endpoint, burst of 5
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	return &InMemoryLimiter{
		keys: make(map[string]*rate.Limiter),
		r:    rate.Every(per / time.Duration(requests)),
		b:    burst,
	}
}

// Wait blocks until the key's limiter allows another call or the
// context is cancelled
func (l *InMemoryLimiter) Wait(ctx context.Context, key string) error {
	l.mu.Lock()
	limiter, exists := l.keys[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.keys[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
