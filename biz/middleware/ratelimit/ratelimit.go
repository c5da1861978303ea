package ratelimit

import (
	"context"

	"stock_tracker/be/biz/config"
	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// New builds a per-path fixed-window limiter keyed on client IP, using the
// rules from config.GetRateLimitConf(). Paths without a rule fall back to the
// default rule.
func New(rdb *redis.Client) app.HandlerFunc {
	confList := config.GetRateLimitConf()
	rules := make(map[string]*Interceptor)

	for _, conf := range confList {
		if conf.Path != "" && conf.WindowSeconds > 0 && conf.Limit > 0 {
			rules[conf.Path] = NewInterceptor(rdb, conf.WindowSeconds, conf.Limit)
		}
	}

	// Default rule: window=1, limit=20
	defaultRule := NewInterceptor(rdb, 1, 20)

	return func(ctx context.Context, c *app.RequestContext) {
		path := string(c.Request.URI().Path())

		interceptor, ok := rules[path]
		if !ok {
			interceptor = defaultRule
		}

		key := c.ClientIP()
		allowed, err := interceptor.Allow(ctx, key)
		if err != nil {
			// Fail open strategy: Log error and allow request on Redis failure
			hlog.CtxErrorf(ctx, "Rate limit error for key %s: %v", key, err)
			c.Next(ctx)
			return
		}

		if !allowed {
			resp.AbortWithErr(c, errs.TooManyRequest)
			return
		}

		c.Next(ctx)
	}
}
