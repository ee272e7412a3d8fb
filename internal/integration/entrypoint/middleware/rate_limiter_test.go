package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, "sign-in", maxAttempts, window), mr
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, _ := rl.allow(ctx, "10.0.0.1")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if allowed, _ := rl.allow(ctx, "10.0.0.2"); !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := rl.allow(ctx, "10.0.0.2")
	if allowed {
		t.Fatal("request over the limit should be blocked")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("retry-after out of range: %v", retryAfter)
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if allowed, _ := rl.allow(ctx, "10.0.0.3"); !allowed {
		t.Fatal("first request from first IP should be allowed")
	}
	if allowed, _ := rl.allow(ctx, "10.0.0.3"); allowed {
		t.Fatal("second request from first IP should be blocked")
	}
	if allowed, _ := rl.allow(ctx, "10.0.0.4"); !allowed {
		t.Fatal("request from a different IP should be allowed")
	}
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	rl, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if allowed, _ := rl.allow(ctx, "10.0.0.5"); !allowed {
		t.Fatal("first request should be allowed")
	}
	if allowed, _ := rl.allow(ctx, "10.0.0.5"); allowed {
		t.Fatal("second request should be blocked")
	}

	mr.FastForward(time.Minute + time.Second)

	if allowed, _ := rl.allow(ctx, "10.0.0.5"); !allowed {
		t.Fatal("request after window expiry should be allowed")
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	rl.allow(ctx, "10.0.0.6")
	if allowed, _ := rl.allow(ctx, "10.0.0.6"); allowed {
		t.Fatal("should be blocked before reset")
	}

	if err := rl.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if allowed, _ := rl.allow(ctx, "10.0.0.6"); !allowed {
		t.Fatal("should be allowed after reset")
	}
}
