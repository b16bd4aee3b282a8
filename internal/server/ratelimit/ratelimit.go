// Package ratelimit provides rate limiting functionality using token bucket algorithm.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// TokenBucket represents a token bucket rate limiter.
// It allows a certain number of requests (tokens) per time window,
// with tokens refilling at a steady rate.
type TokenBucket struct {
	capacity   int        // Maximum tokens (burst capacity)
	refillRate float64    // Tokens per second
	tokens     float64    // Current tokens available
	lastRefill time.Time  // Last time tokens were refilled
	mu         sync.Mutex // Mutex for thread safety
}

// newTokenBucket creates a new token bucket with the specified capacity and refill rate.
func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity), // Start with full bucket
		lastRefill: time.Now(),
	}
}

// allow checks if a token is available and consumes it if so.
// Returns true if request is allowed, false otherwise.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	// Refill tokens based on time elapsed
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tokensToAdd := elapsed.Seconds() * tb.refillRate

	// Add tokens, but don't exceed capacity
	tb.tokens = min(float64(tb.capacity), tb.tokens+tokensToAdd)
	tb.lastRefill = now

	// Check if we have at least one token
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}

	return false
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	RetryAfter time.Duration
}

// Limiter manages rate limiting for multiple clients using token buckets.
type Limiter struct {
	buckets       map[string]*TokenBucket // Client+endpoint key -> bucket
	mu            sync.RWMutex
	config        *Config
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	lastAccess    map[string]time.Time // Track last access for cleanup
	accessMu      sync.RWMutex
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = defaultConfig()
	}

	limiter := &Limiter{
		buckets:    make(map[string]*TokenBucket),
		config:     config,
		lastAccess: make(map[string]time.Time),
	}

	// Start cleanup goroutine if enabled
	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	// Health checks are never limited
	if endpoint == "/health" {
		return true, Info{Allowed: true}
	}

	cfg := matchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if cfg == nil {
		cfg = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	bucketKey := clientID + ":" + endpoint + ":" + method
	bucket := l.getBucket(bucketKey, cfg)

	l.accessMu.Lock()
	l.lastAccess[bucketKey] = time.Now()
	l.accessMu.Unlock()

	if bucket.allow() {
		return true, Info{Allowed: true, Limit: cfg.Limit}
	}
	return false, Info{
		Allowed:    false,
		Limit:      cfg.Limit,
		RetryAfter: time.Duration(float64(time.Second) / refillRate(cfg)),
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) getBucket(key string, cfg *EndpointConfig) *TokenBucket {
	l.mu.RLock()
	bucket, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return bucket
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if bucket, ok = l.buckets[key]; ok {
		return bucket
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Limit
	}
	bucket = newTokenBucket(burst, refillRate(cfg))
	l.buckets[key] = bucket
	return bucket
}

// cleanup drops buckets that have not been used for two cleanup intervals.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupStop:
			return
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-2 * l.config.CleanupInterval)

			l.accessMu.Lock()
			var stale []string
			for key, last := range l.lastAccess {
				if last.Before(cutoff) {
					stale = append(stale, key)
					delete(l.lastAccess, key)
				}
			}
			l.accessMu.Unlock()

			l.mu.Lock()
			for _, key := range stale {
				delete(l.buckets, key)
			}
			l.mu.Unlock()
		}
	}
}

func refillRate(cfg *EndpointConfig) float64 {
	if cfg.Window <= 0 {
		return float64(cfg.Limit)
	}
	return float64(cfg.Limit) / cfg.Window.Seconds()
}

// matchEndpoint finds the first endpoint config whose path prefix and method
// match the request.
func matchEndpoint(endpoint, method string, configs []EndpointConfig) *EndpointConfig {
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != "" && cfg.Method != method {
			continue
		}
		if strings.HasPrefix(endpoint, cfg.Path) {
			return cfg
		}
	}
	return nil
}
