package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_AllowsBurstThenDenies(t *testing.T) {
	// Tiny refill rate so the bucket does not recover during the test.
	bucket := newTokenBucket(3, 0.001)

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())
}

func TestTokenBucket_Refills(t *testing.T) {
	// 100 tokens per second refills a drained bucket almost immediately.
	bucket := newTokenBucket(1, 100)

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client", "/check", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_HealthNeverLimited(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1,
		DefaultWindow:   time.Hour,
		EndpointConfigs: []EndpointConfig{{Path: "/health", Method: "GET", Limit: 1, Window: time.Hour, Burst: 1}},
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("client", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_EnforcesBurst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/check", Method: "POST", Limit: 60, Window: time.Hour, Burst: 2},
		},
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("client", "/check", "POST")
	require.True(t, allowed)
	assert.Equal(t, 60, info.Limit)

	allowed, _ = limiter.Allow("client", "/check", "POST")
	require.True(t, allowed)

	allowed, info = limiter.Allow("client", "/check", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/check", Method: "POST", Limit: 60, Window: time.Hour, Burst: 1},
		},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a", "/check", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-a", "/check", "POST")
	require.False(t, allowed)

	// A different client still has a full bucket.
	allowed, _ = limiter.Allow("client-b", "/check", "POST")
	assert.True(t, allowed)
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	limiter := NewLimiter(defaultConfig())
	defer limiter.Stop()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			client := fmt.Sprintf("client-%d", n)
			for j := 0; j < 50; j++ {
				limiter.Allow(client, "/enhance", "POST")
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	check := matchEndpoint("/check", "POST", configs)
	require.NotNil(t, check)
	assert.Equal(t, 120, check.Limit)

	group := matchEndpoint("/skills/group", "POST", configs)
	require.NotNil(t, group)
	assert.Equal(t, 300, group.Limit)

	// Method must match too.
	assert.Nil(t, matchEndpoint("/check", "GET", configs))
	assert.Nil(t, matchEndpoint("/unknown", "POST", configs))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}

func TestRefillRate(t *testing.T) {
	assert.InDelta(t, 2.0, refillRate(&EndpointConfig{Limit: 120, Window: time.Minute}), 0.001)
	// A zero window degenerates to limit-per-second.
	assert.InDelta(t, 5.0, refillRate(&EndpointConfig{Limit: 5}), 0.001)
}
