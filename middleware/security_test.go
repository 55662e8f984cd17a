package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiterCleanupDropsIdleKeys(t *testing.T) {
	rl := NewRateLimiter()
	rl.GetLimiter("stale|10.0.0.1", rate.Every(time.Second), 1)
	rl.GetLimiter("fresh|10.0.0.2", rate.Every(time.Second), 1)

	rl.mutex.Lock()
	rl.lastSeen["stale|10.0.0.1"] = time.Now().Add(-2 * time.Hour)
	rl.mutex.Unlock()

	rl.Cleanup()

	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	assert.NotContains(t, rl.limiters, "stale|10.0.0.1")
	assert.NotContains(t, rl.lastSeen, "stale|10.0.0.1")
	assert.Contains(t, rl.limiters, "fresh|10.0.0.2")
}

func TestRateLimiterReusesLimiterPerKey(t *testing.T) {
	rl := NewRateLimiter()
	first := rl.GetLimiter("auth|10.0.0.1", rate.Every(time.Second), 1)
	second := rl.GetLimiter("auth|10.0.0.1", rate.Every(time.Second), 1)
	assert.Same(t, first, second)
}
