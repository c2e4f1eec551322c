package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMiniRedis(t *testing.T) *redis.Client {
	t.Helper()
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(s.Close)
	return redis.NewClient(&redis.Options{Addr: s.Addr()})
}

func closeRedis(t *testing.T, rdb *redis.Client) {
	t.Helper()
	if err := rdb.Close(); err != nil {
		t.Fatalf("close redis: %v", err)
	}
}

func testConfig() config.RateLimit {
	return config.RateLimit{
		Window:          2 * time.Minute,
		Limit:           2,
		ExemptGithubIDs: []int64{10000001},
	}
}

// newTestLimiter pins the limiter clock to a mutable time value so window
// arithmetic is deterministic.
func newTestLimiter(t *testing.T, rdb *redis.Client, current *time.Time) *Limiter {
	t.Helper()
	limiter, err := NewWithClient(rdb, testConfig(), logger.Nop())
	if err != nil {
		t.Fatalf("create limiter: %v", err)
	}
	limiter.now = func() time.Time { return *current }
	return limiter
}

func TestNewWithClient_NilClient(t *testing.T) {
	_, err := NewWithClient(nil, testConfig(), logger.Nop())
	if err == nil {
		t.Fatal("expected error for nil redis client, got nil")
	}
}

func TestNewWithClient_InvalidParams(t *testing.T) {
	rdb := newMiniRedis(t)
	defer closeRedis(t, rdb)

	cfg := testConfig()
	cfg.Limit = 0

	_, err := NewWithClient(rdb, cfg, logger.Nop())
	if err == nil {
		t.Fatal("expected error for zero limit, got nil")
	}
}

func TestAllow_WithinLimit(t *testing.T) {
	rdb := newMiniRedis(t)
	defer closeRedis(t, rdb)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, rdb, &now)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, 5021)
	if err != nil {
		t.Fatalf("first allow: %v", err)
	}
	if !first.Allowed {
		t.Fatal("expected first request to be allowed")
	}
	if first.Remaining != 1 {
		t.Errorf("expected remaining=1 after first request, got %d", first.Remaining)
	}

	second, err := limiter.Allow(ctx, 5021)
	if err != nil {
		t.Fatalf("second allow: %v", err)
	}
	if !second.Allowed {
		t.Fatal("expected second request to be allowed")
	}
	if second.Remaining != 0 {
		t.Errorf("expected remaining=0 after second request, got %d", second.Remaining)
	}
}

func TestAllow_OverLimitBlocked(t *testing.T) {
	rdb := newMiniRedis(t)
	defer closeRedis(t, rdb)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, rdb, &now)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := limiter.Allow(ctx, 5021); err != nil {
			t.Fatalf("warmup allow %d: %v", i, err)
		}
	}

	third, err := limiter.Allow(ctx, 5021)
	if err != nil {
		t.Fatalf("third allow: %v", err)
	}
	if third.Allowed {
		t.Fatal("expected third request to be blocked")
	}
	if third.Remaining != 0 {
		t.Errorf("expected remaining=0, got %d", third.Remaining)
	}
	if third.ResetAfter <= 0 || third.ResetAfter > 2*time.Minute {
		t.Errorf("expected reset within (0, 2m], got %v", third.ResetAfter)
	}
}

// ResetAfter must point at the moment the oldest counted request leaves the
// window, not simply "one full window from now".
func TestAllow_ResetAfterTracksOldestRequest(t *testing.T) {
	rdb := newMiniRedis(t)
	defer closeRedis(t, rdb)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, rdb, &now)
	ctx := context.Background()

	if _, err := limiter.Allow(ctx, 5021); err != nil {
		t.Fatalf("first allow: %v", err)
	}

	now = now.Add(30 * time.Second)
	if _, err := limiter.Allow(ctx, 5021); err != nil {
		t.Fatalf("second allow: %v", err)
	}

	now = now.Add(10 * time.Second)
	blocked, err := limiter.Allow(ctx, 5021)
	if err != nil {
		t.Fatalf("third allow: %v", err)
	}
	if blocked.Allowed {
		t.Fatal("expected third request to be blocked")
	}

	// oldest at t0, window 2m, now t0+40s → slot frees in 80s
	if blocked.ResetAfter != 80*time.Second {
		t.Errorf("expected reset after 80s, got %v", blocked.ResetAfter)
	}
}

func TestAllow_WindowSlides(t *testing.T) {
	rdb := newMiniRedis(t)
	defer closeRedis(t, rdb)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, rdb, &now)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := limiter.Allow(ctx, 5021); err != nil {
			t.Fatalf("warmup allow %d: %v", i, err)
		}
	}

	blocked, err := limiter.Allow(ctx, 5021)
	if err != nil {
		t.Fatalf("blocked allow: %v", err)
	}
	if blocked.Allowed {
		t.Fatal("expected request to be blocked inside the window")
	}

	// all recorded requests fall out of the window once it slides past them
	now = now.Add(2*time.Minute + time.Second)

	after, err := limiter.Allow(ctx, 5021)
	if err != nil {
		t.Fatalf("allow after window: %v", err)
	}
	if !after.Allowed {
		t.Fatal("expected request to be allowed after the window slid")
	}
	if after.Remaining != 1 {
		t.Errorf("expected remaining=1 in the fresh window, got %d", after.Remaining)
	}
}

func TestAllow_ExemptUserNeverBlocked(t *testing.T) {
	rdb := newMiniRedis(t)
	defer closeRedis(t, rdb)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, rdb, &now)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		res, err := limiter.Allow(ctx, 10000001)
		if err != nil {
			t.Fatalf("exempt allow %d: %v", i, err)
		}
		if !res.Allowed {
			t.Fatalf("exempt user blocked on request %d", i)
		}
		if !res.Exempt {
			t.Fatalf("expected Exempt=true on request %d", i)
		}
	}

	// exempt traffic must not leave counters behind
	keys, err := rdb.Keys(ctx, "ratelimit:*").Result()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("expected no rate limit keys for exempt user, got %v", keys)
	}
}

func TestAllow_UsersCountedIndependently(t *testing.T) {
	rdb := newMiniRedis(t)
	defer closeRedis(t, rdb)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, rdb, &now)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := limiter.Allow(ctx, 5021); err != nil {
			t.Fatalf("warmup allow %d: %v", i, err)
		}
	}

	blocked, err := limiter.Allow(ctx, 5021)
	if err != nil {
		t.Fatalf("blocked allow: %v", err)
	}
	if blocked.Allowed {
		t.Fatal("expected first user to be blocked")
	}

	other, err := limiter.Allow(ctx, 777)
	if err != nil {
		t.Fatalf("other user allow: %v", err)
	}
	if !other.Allowed {
		t.Fatal("expected second user to be unaffected")
	}
}

func TestAllow_RedisUnavailable(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer closeRedis(t, rdb)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, rdb, &now)

	s.Close()

	_, err = limiter.Allow(context.Background(), 5021)
	if err == nil {
		t.Fatal("expected error when redis is down, got nil")
	}
}
