package ratelimiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestAllowPerEndpoint(t *testing.T) {
	rl := NewFixedWindowLimiter(2, time.Minute)

	for i := 0; i < 2; i++ {
		if ok, _ := rl.Allow("/dish"); !ok {
			t.Fatalf("call %d should be allowed", i+1)
		}
	}

	ok, retryAfter := rl.Allow("/dish")
	if ok {
		t.Fatal("third call in the window should be throttled")
	}
	if retryAfter != time.Minute {
		t.Fatalf("retryAfter = %v, want the window", retryAfter)
	}

	// a different endpoint has its own counter
	if ok, _ := rl.Allow("/task"); !ok {
		t.Fatal("other endpoints should be unaffected")
	}
}

func TestAllowNeverOvershootsConcurrently(t *testing.T) {
	const limit = 5
	rl := NewFixedWindowLimiter(limit, time.Minute)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.Allow("/dish"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if n := allowed.Load(); n != limit {
		t.Fatalf("allowed %d concurrent calls, want exactly %d", n, limit)
	}
}
