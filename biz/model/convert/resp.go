package convert

import (
	"stock_tracker/be/biz/model/domain"
	"stock_tracker/be/biz/model/dto"
)

// AccountToResp builds the public projection; the stocks array is always
// present, even when empty.
func AccountToResp(a *domain.Account) *dto.AccountResp {
	if a == nil {
		return nil
	}
	stocks := make([]dto.HoldingResp, 0, len(a.Holdings))
	for _, h := range a.Holdings {
		stocks = append(stocks, dto.HoldingResp{
			Symbol: h.Symbol,
			Units:  h.Units,
		})
	}
	return &dto.AccountResp{
		Username: a.Username,
		Name:     a.Name(),
		Stocks:   stocks,
	}
}
