package handler

import (
	"context"
	"net/http"

	"stock_tracker/be/biz/middleware/auth"
	"stock_tracker/be/biz/model/dto"
	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login 用户登录接口
//
// POST /api/auth/login, behind the basic-credentials middleware. Issues a
// fresh token for the authenticated identity.
func (h *AuthHandler) Login(ctx context.Context, c *app.RequestContext) {
	payload := auth.GetPayload(ctx)
	if payload.Username == "" {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	token, _, err := auth.GenerateToken(ctx, payload)
	if err != nil {
		resp.FailResp(c, errs.ServerError)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResp{AuthToken: token})
}

// Refresh 刷新token接口
//
// POST /api/auth/refresh, behind the bearer-token middleware. Re-issues the
// presented token with an expiry no earlier than the original's.
func (h *AuthHandler) Refresh(ctx context.Context, c *app.RequestContext) {
	token, _, err := auth.Refresh(ctx, auth.BearerToken(c))
	if err != nil {
		hlog.CtxInfof(ctx, "refresh token err: %v", err)
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResp{AuthToken: token})
}
