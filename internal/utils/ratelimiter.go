package utils

import (
	"fmt"
	"sync"
	"time"

	config "github.com/inference-gateway/drawbot/config"
	domain "github.com/inference-gateway/drawbot/internal/domain"
)

// SlidingWindowRateLimiter allows at most MaxActionsPerMinute commands in any
// trailing window of WindowSeconds
type SlidingWindowRateLimiter struct {
	cfg   config.RateLimitConfig
	times []time.Time
	now   func() time.Time
	mu    sync.Mutex
}

var _ domain.RateLimiter = (*SlidingWindowRateLimiter)(nil)

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg config.RateLimitConfig) *SlidingWindowRateLimiter {
	return &SlidingWindowRateLimiter{cfg: cfg, now: time.Now}
}

func (rl *SlidingWindowRateLimiter) window() time.Duration {
	return time.Duration(rl.cfg.WindowSeconds) * time.Second
}

// prune drops entries older than the window; callers hold mu
func (rl *SlidingWindowRateLimiter) prune(now time.Time) {
	start := now.Add(-rl.window())
	kept := rl.times[:0]
	for _, t := range rl.times {
		if t.After(start) {
			kept = append(kept, t)
		}
	}
	rl.times = kept
}

// CheckAndRecord records the action, or returns an error without recording
// when the window is full
func (rl *SlidingWindowRateLimiter) CheckAndRecord(action string) error {
	if !rl.cfg.Enabled {
		return nil
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.prune(now)

	if len(rl.times) >= rl.cfg.MaxActionsPerMinute {
		return fmt.Errorf("rate limit exceeded for %s: maximum %d commands per %d seconds",
			action, rl.cfg.MaxActionsPerMinute, rl.cfg.WindowSeconds)
	}

	rl.times = append(rl.times, now)
	return nil
}

// GetCurrentCount returns the number of actions in the current window
func (rl *SlidingWindowRateLimiter) GetCurrentCount() int {
	if !rl.cfg.Enabled {
		return 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune(rl.now())
	return len(rl.times)
}

// Reset clears all recorded actions
func (rl *SlidingWindowRateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.times = nil
}
