// Package ratelimit provides a per-key token bucket limiter whose idle keys expire.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	DefaultMaxKeys = 1000
	DefaultTTL     = 5 * time.Minute
)

// ErrLimited is returned by Allow when a key has no tokens left.
var ErrLimited = errors.New("rate limit exceeded")

// Config configures New.
type Config struct {
	PerMinute int
	// Burst defaults to PerMinute/10, at least 1.
	Burst   int
	MaxKeys int
	TTL     time.Duration
}

// Keyed holds one limiter per key in an expiring LRU table.
type Keyed struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Keyed limiter. PerMinute <= 0 disables limiting.
func New(cfg Config) *Keyed {
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = DefaultMaxKeys
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.PerMinute / 10
	}
	if burst < 1 {
		burst = 1
	}

	limit := rate.Inf
	if cfg.PerMinute > 0 {
		limit = rate.Limit(float64(cfg.PerMinute) / 60.0)
	}

	return &Keyed{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxKeys, nil, cfg.TTL),
		rate:     limit,
		burst:    burst,
	}
}

// Allow consumes one token for key.
func (k *Keyed) Allow(key string) error {
	if !k.limiter(key).Allow() {
		return fmt.Errorf("%w for %s", ErrLimited, key)
	}
	return nil
}

func (k *Keyed) limiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.limiters.Get(key)
	if !ok {
		l = rate.NewLimiter(k.rate, k.burst)
		k.limiters.Add(key, l)
	}
	return l
}

// Len reports how many keys are currently tracked.
func (k *Keyed) Len() int {
	return k.limiters.Len()
}
