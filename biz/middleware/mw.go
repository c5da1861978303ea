package middleware

import (
	"stock_tracker/be/biz/middleware/accesslog"
	"stock_tracker/be/biz/middleware/cors"
	"stock_tracker/be/biz/middleware/ratelimit"
	"stock_tracker/be/biz/middleware/recovery"
	"stock_tracker/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/redis/go-redis/v9"
)

func Suite(rdb *redis.Client) []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),     // panic handler
		trace.New(),        // 链路ID
		accesslog.New(),    // 接口日志
		cors.New(),         // 跨域请求
		ratelimit.New(rdb), // 限流
	}
}
