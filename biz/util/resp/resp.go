package resp

import (
	"stock_tracker/be/biz/model/dto"
	"stock_tracker/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func errBody(bizErr errs.Error) *dto.ErrorResp {
	if bizErr == nil {
		bizErr = errs.ServerError
	}
	return &dto.ErrorResp{
		Reason:   bizErr.Reason(),
		Message:  bizErr.Msg(),
		Location: bizErr.Location(),
	}
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	if bizErr == nil {
		bizErr = errs.ServerError
	}
	c.JSON(bizErr.Status(), errBody(bizErr))
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error) {
	c.AbortWithStatusJSON(bizErr.Status(), errBody(bizErr))
}
