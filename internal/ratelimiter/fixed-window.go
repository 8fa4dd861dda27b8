package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// FixedWindowRateLimiter throttles outbound calls per endpoint path so a
// runaway loop in the portal cannot hammer the shared backend. Counters reset
// wholesale every window.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	endpoints map[string]int //string:endpoint path, int count
	limit     int
	window    time.Duration
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		endpoints: make(map[string]int),
		limit:     limit,
		window:    window,
	}
	go rl.cleanup()
	return rl
}

func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	for range ticker.C {
		rl.Lock()
		rl.endpoints = make(map[string]int) // reset all
		rl.Unlock()
	}
}

// Allow reports whether another call to path may go out now. When the window
// is exhausted it returns the time to wait before retrying. Check and
// increment share one critical section so concurrent callers cannot overshoot
// the limit.
func (rl *FixedWindowRateLimiter) Allow(path string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	count, exists := rl.endpoints[path]
	if count >= rl.limit {
		return false, rl.window
	}

	if !exists {
		go rl.resetCount(path)
	}
	rl.endpoints[path]++
	return true, 0
}

func (rl *FixedWindowRateLimiter) resetCount(path string) {
	time.Sleep(rl.window)
	rl.Lock()
	delete(rl.endpoints, path)
	rl.Unlock()
}
