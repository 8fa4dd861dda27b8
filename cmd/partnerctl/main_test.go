package main

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLoadRateLimiterConfig(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Setenv("RATELIMITER_REQUESTS_COUNT", "12")
	t.Setenv("RATE_LIMITER_ENABLED", "true")
	cfg := LoadRateLimiterConfig(logger)
	if cfg.RequestsPerTimeFrame != 12 || !cfg.Enabled {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.TimeFrame != 5*time.Second {
		t.Fatalf("TimeFrame = %v", cfg.TimeFrame)
	}

	// unparsable values fall back to the defaults
	t.Setenv("RATELIMITER_REQUESTS_COUNT", "not-a-number")
	t.Setenv("RATE_LIMITER_ENABLED", "maybe")
	cfg = LoadRateLimiterConfig(logger)
	if cfg.RequestsPerTimeFrame != 30 || cfg.Enabled {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}
