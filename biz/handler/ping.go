package handler

import (
	"context"
	"net/http"

	"stock_tracker/be/biz/model/dto"

	"github.com/cloudwego/hertz/pkg/app"
)

// Ping 健康检查接口
func Ping(_ context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, dto.PingResp{OK: true})
}
