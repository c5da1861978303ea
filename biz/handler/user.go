package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"stock_tracker/be/biz/model/convert"
	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/service/user"
	"stock_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UserHandler struct {
	users *user.Service
}

func NewUserHandler(users *user.Service) *UserHandler {
	return &UserHandler{users: users}
}

// Register 用户注册接口
//
// POST /api/users
// The body is decoded into a raw map so the validation pipeline can report
// missing and mistyped fields individually.
func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	var body map[string]any
	if err := json.Unmarshal(c.Request.Body(), &body); err != nil {
		hlog.CtxNoticef(ctx, "decode register body err: %v", err)
		resp.AbortWithErr(c, errs.MissingField.SetMsg("Malformed request body"))
		return
	}

	a, bizErr := h.users.Register(ctx, body)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, convert.AccountToResp(a))
}
