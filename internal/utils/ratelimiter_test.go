package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/inference-gateway/drawbot/config"
)

func TestRateLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, MaxActionsPerMinute: 2, WindowSeconds: 60})
	rl.now = func() time.Time { return now }

	require.NoError(t, rl.CheckAndRecord("command"))
	require.NoError(t, rl.CheckAndRecord("command"))
	assert.Equal(t, 2, rl.GetCurrentCount())

	err := rl.CheckAndRecord("command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.Equal(t, 2, rl.GetCurrentCount())

	now = now.Add(61 * time.Second)
	assert.Equal(t, 0, rl.GetCurrentCount())
	require.NoError(t, rl.CheckAndRecord("command"))

	rl.Reset()
	assert.Equal(t, 0, rl.GetCurrentCount())
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: false, MaxActionsPerMinute: 1, WindowSeconds: 60})

	for i := 0; i < 5; i++ {
		require.NoError(t, rl.CheckAndRecord("command"))
	}
	assert.Equal(t, 0, rl.GetCurrentCount())
}
