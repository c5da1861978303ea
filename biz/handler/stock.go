package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"stock_tracker/be/biz/model/convert"
	"stock_tracker/be/biz/model/dto"
	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/service/stock"
	"stock_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type StockHandler struct {
	stocks *stock.Service
}

func NewStockHandler(stocks *stock.Service) *StockHandler {
	return &StockHandler{stocks: stocks}
}

// List 持仓列表接口
//
// GET /api/stocks/:username
func (h *StockHandler) List(ctx context.Context, c *app.RequestContext) {
	holdings, bizErr := h.stocks.List(ctx, c.Param("username"))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	stocks := make([]dto.HoldingResp, 0, len(holdings))
	for _, holding := range holdings {
		stocks = append(stocks, dto.HoldingResp{
			Symbol: holding.Symbol,
			Units:  holding.Units,
		})
	}
	c.JSON(http.StatusOK, stocks)
}

// Upsert 新增或更新持仓接口
//
// POST /api/stocks/:username. Appending a new symbol answers 200 with the
// updated projection; updating an existing one answers 204.
func (h *StockHandler) Upsert(ctx context.Context, c *app.RequestContext) {
	var req dto.UpsertHoldingReq
	if err := json.Unmarshal(c.Request.Body(), &req); err != nil {
		hlog.CtxNoticef(ctx, "decode upsert body err: %v", err)
		resp.AbortWithErr(c, errs.MissingField.SetMsg("Malformed request body"))
		return
	}
	if req.Symbol == nil {
		resp.FailResp(c, errs.MissingField.At("symbol"))
		return
	}
	if req.Units == nil {
		resp.FailResp(c, errs.MissingField.At("units"))
		return
	}

	created, account, bizErr := h.stocks.Upsert(ctx, c.Param("username"), *req.Symbol, *req.Units)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	if !created {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, convert.AccountToResp(account))
}

// SetUnits 更新持仓数量接口
//
// PUT /api/stocks/:username/:symbol
func (h *StockHandler) SetUnits(ctx context.Context, c *app.RequestContext) {
	var req dto.SetUnitsReq
	if err := json.Unmarshal(c.Request.Body(), &req); err != nil {
		hlog.CtxNoticef(ctx, "decode set units body err: %v", err)
		resp.AbortWithErr(c, errs.MissingField.SetMsg("Malformed request body"))
		return
	}
	if req.Units == nil {
		resp.FailResp(c, errs.MissingField.At("units"))
		return
	}

	if bizErr := h.stocks.SetUnits(ctx, c.Param("username"), c.Param("symbol"), *req.Units); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove 删除持仓接口
//
// DELETE /api/stocks/:username/:symbol. Idempotent.
func (h *StockHandler) Remove(ctx context.Context, c *app.RequestContext) {
	if bizErr := h.stocks.Remove(ctx, c.Param("username"), c.Param("symbol")); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	c.Status(http.StatusNoContent)
}
