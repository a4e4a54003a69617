// Package throttle caps anonymous requests per client in Redis, so that the
// token endpoints cannot be hammered from a single address.
package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/redis/go-redis/v9"
)

type Throttle struct {
	redis  redis.UniversalClient
	limit  int
	window time.Duration
}

func New(client redis.UniversalClient, limit int, window time.Duration) *Throttle {
	return &Throttle{redis: client, limit: limit, window: window}
}

// Allow counts one request for key within scope. It returns
// common.ErrRateLimited once more than limit requests were seen in the
// current window.
func (t *Throttle) Allow(ctx context.Context, scope, key string) error {
	k := "tp:throttle:" + scope + ":" + key

	count, err := t.redis.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	if count == 1 {
		if err := t.redis.Expire(ctx, k, t.window).Err(); err != nil {
			return fmt.Errorf("%w: %v", common.ErrTransport, err)
		}
	}
	if count > int64(t.limit) {
		return common.ErrRateLimited
	}
	return nil
}
