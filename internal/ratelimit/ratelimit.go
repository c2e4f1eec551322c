// Package ratelimit implements a per-user sliding-window rate limiter backed
// by Redis. Request timestamps are stored in a sorted set per user; a Lua
// script keeps the trim-count-add sequence atomic across server instances.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const slidingWindowLua = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call("ZREMRANGEBYSCORE", key, 0, now - window)

local count = redis.call("ZCARD", key)
if count < limit then
  redis.call("ZADD", key, now, member)
  redis.call("PEXPIRE", key, window)
  return {1, limit - count - 1, window}
end

local oldest = redis.call("ZRANGE", key, 0, 0, "WITHSCORES")
local reset = window
if oldest[2] ~= nil then
  reset = tonumber(oldest[2]) + window - now
end
return {0, 0, reset}
`

// Result describes the outcome of a single [Limiter.Allow] call.
type Result struct {
	// Allowed reports whether the request fits into the current window.
	Allowed bool
	// Exempt is true when the user is on the exemption allowlist; such
	// requests are never counted and carry no quota information.
	Exempt bool
	// Remaining is the number of requests still available in the window.
	Remaining int
	// ResetAfter is the time until the oldest counted request leaves the
	// window, freeing one slot.
	ResetAfter time.Duration
}

// Limiter counts requests per GitHub account ID within a sliding window.
type Limiter struct {
	rdb    *redis.Client
	script *redis.Script

	window time.Duration
	limit  int
	exempt map[int64]struct{}

	// now is stubbed in tests; defaults to time.Now.
	now func() time.Time

	logger *logger.Logger
}

// New connects to the Redis instance named in cfg and returns a ready
// [Limiter]. The connection is verified with a ping before use.
func New(ctx context.Context, cfg config.RateLimit, log *logger.Logger) (*Limiter, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddress,
		DB:   0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "New").Msg("error connecting to redis (ping)")
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	log.Info().Str("func", "New").Msg("connected to redis successfully")

	return NewWithClient(rdb, cfg, log)
}

// NewWithClient builds a [Limiter] on top of an existing Redis client.
func NewWithClient(rdb *redis.Client, cfg config.RateLimit, log *logger.Logger) (*Limiter, error) {
	if rdb == nil {
		return nil, errors.New("redis client is nil")
	}

	if cfg.Window <= 0 || cfg.Limit <= 0 {
		return nil, fmt.Errorf("invalid rate limit parameters: window=%v limit=%d", cfg.Window, cfg.Limit)
	}

	exempt := make(map[int64]struct{}, len(cfg.ExemptGithubIDs))
	for _, id := range cfg.ExemptGithubIDs {
		exempt[id] = struct{}{}
	}

	return &Limiter{
		rdb:    rdb,
		script: redis.NewScript(slidingWindowLua),
		window: cfg.Window,
		limit:  cfg.Limit,
		exempt: exempt,
		now:    time.Now,
		logger: log,
	}, nil
}

// Limit returns the maximum number of requests allowed per window.
func (l *Limiter) Limit() int {
	return l.limit
}

// Window returns the length of the sliding window.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Allow records a request attempt for the given GitHub account ID and
// reports whether it fits into the current window.
//
// Allowlisted IDs short-circuit with Exempt set and are never counted.
// A Redis failure is returned to the caller; the limiter itself makes no
// open-or-closed decision on errors.
func (l *Limiter) Allow(ctx context.Context, githubID int64) (Result, error) {
	if _, ok := l.exempt[githubID]; ok {
		return Result{Allowed: true, Exempt: true}, nil
	}

	key := fmt.Sprintf("ratelimit:github:%d", githubID)
	nowMs := l.now().UnixMilli()
	windowMs := l.window.Milliseconds()

	res, err := l.script.Run(ctx, l.rdb, []string{key}, nowMs, windowMs, l.limit, uuid.NewString()).Result()
	if err != nil {
		l.logger.Err(err).Str("func", "*Limiter.Allow").Int64("githubId", githubID).Msg("rate limit script failed")
		return Result{}, fmt.Errorf("rate limit eval: %w", err)
	}

	values, ok := res.([]interface{})
	if !ok || len(values) < 3 {
		return Result{}, fmt.Errorf("rate limit invalid result: %v", res)
	}

	return Result{
		Allowed:    toInt64(values[0]) == 1,
		Remaining:  int(toInt64(values[1])),
		ResetAfter: time.Duration(toInt64(values[2])) * time.Millisecond,
	}, nil
}

// Close releases the underlying Redis connection.
func (l *Limiter) Close() error {
	return l.rdb.Close()
}

func toInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if t == "" {
			return 0
		}
		if parsed, err := strconv.ParseInt(t, 10, 64); err == nil {
			return parsed
		}
	}
	return 0
}
