package handler

import (
	"context"
	"net/http"

	"stock_tracker/be/biz/market"
	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const jsonContentType = "application/json; charset=utf-8"

type MarketHandler struct {
	market *market.Client
}

func NewMarketHandler(cli *market.Client) *MarketHandler {
	return &MarketHandler{market: cli}
}

// Quote 行情查询接口
//
// GET /api/quote/:symbol. Pure passthrough of the provider response.
func (h *MarketHandler) Quote(ctx context.Context, c *app.RequestContext) {
	body, err := h.market.Quote(ctx, c.Param("symbol"))
	if err != nil {
		hlog.CtxErrorf(ctx, "quote upstream err: %v", err)
		resp.FailResp(c, errs.UpstreamError)
		return
	}

	c.Data(http.StatusOK, jsonContentType, body)
}

// Search 证券搜索接口
//
// GET /api/search?q=
func (h *MarketHandler) Search(ctx context.Context, c *app.RequestContext) {
	query := c.Query("q")
	if query == "" {
		resp.FailResp(c, errs.MissingField.At("q"))
		return
	}

	body, err := h.market.Search(ctx, query)
	if err != nil {
		hlog.CtxErrorf(ctx, "search upstream err: %v", err)
		resp.FailResp(c, errs.UpstreamError)
		return
	}

	c.Data(http.StatusOK, jsonContentType, body)
}
