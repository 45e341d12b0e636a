package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter is a fixed-window counter shared by all instances of the
// API. The first hit of a window creates the key with a TTL; subsequent hits
// increment it until the window expires.
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration, prefix string) *FixedWindowLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &FixedWindowLimiter{client: client, limit: limit, window: window, prefix: prefix}
}

// Allow reports whether the caller identified by key may proceed in the
// current window. The error is non-nil only when Redis itself failed.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.incr(ctx, l.prefix+":"+key)
	if err != nil {
		return false, err
	}
	return count <= int64(l.limit), nil
}

func (l *FixedWindowLimiter) incr(ctx context.Context, key string) (int64, error) {
	ms := l.window.Milliseconds()
	res, err := fixedWindowScript.Run(ctx, l.client, []string{key}, ms).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		// Lua may return strings depending on Redis config.
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
