package stock

import (
	"context"

	"stock_tracker/be/biz/model/convert"
	"stock_tracker/be/biz/model/domain"
	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type AccountRepo interface {
	FindByUsername(ctx context.Context, username string) (*storage.AccountRecord, error)
	UpdateHoldingUnits(ctx context.Context, accountID uint, symbol string, units float64) (int64, error)
	InsertHolding(ctx context.Context, accountID uint, symbol string, units float64) error
	DeleteHolding(ctx context.Context, accountID uint, symbol string) (int64, error)
}

type Service struct {
	accounts AccountRepo
}

func New(accounts AccountRepo) *Service {
	return &Service{accounts: accounts}
}

func (s *Service) List(ctx context.Context, username string) ([]domain.Holding, errs.Error) {
	a, bizErr := s.findAccount(ctx, username)
	if bizErr != nil {
		return nil, bizErr
	}
	return convert.HoldingRecordsToDomain(a.Holdings), nil
}

// Upsert updates the units of an existing position in place, or appends a new
// one. Both paths are single conditional statements, so concurrent upserts on
// the same account cannot lose updates. Returns created=true with the fresh
// projection when a position was appended; an in-place update returns
// created=false and no account.
func (s *Service) Upsert(ctx context.Context, username, symbol string, units float64) (bool, *domain.Account, errs.Error) {
	a, bizErr := s.findAccount(ctx, username)
	if bizErr != nil {
		return false, nil, bizErr
	}

	rows, err := s.accounts.UpdateHoldingUnits(ctx, a.ID, symbol, units)
	if err != nil {
		hlog.CtxErrorf(ctx, "update holding err: %v", err)
		return false, nil, errs.ServerError
	}
	if rows > 0 {
		return false, nil, nil
	}

	if err := s.accounts.InsertHolding(ctx, a.ID, symbol, units); err != nil {
		if errs.IsDuplicatedErr(err) {
			// 并发请求先插入了同一个symbol,退回更新
			if _, err := s.accounts.UpdateHoldingUnits(ctx, a.ID, symbol, units); err != nil {
				hlog.CtxErrorf(ctx, "update holding after insert race err: %v", err)
				return false, nil, errs.ServerError
			}
			return false, nil, nil
		}
		hlog.CtxErrorf(ctx, "insert holding err: %v", err)
		return false, nil, errs.ServerError
	}

	fresh, err := s.accounts.FindByUsername(ctx, username)
	if err != nil || fresh == nil {
		hlog.CtxErrorf(ctx, "reload account err: %v", err)
		return true, nil, errs.ServerError
	}
	return true, convert.AccountRecordToDomain(fresh), nil
}

// SetUnits replaces the units of an existing position. An absent symbol is an
// explicit NotFoundError rather than a silent no-op.
func (s *Service) SetUnits(ctx context.Context, username, symbol string, units float64) errs.Error {
	a, bizErr := s.findAccount(ctx, username)
	if bizErr != nil {
		return bizErr
	}

	rows, err := s.accounts.UpdateHoldingUnits(ctx, a.ID, symbol, units)
	if err != nil {
		hlog.CtxErrorf(ctx, "update holding err: %v", err)
		return errs.ServerError
	}
	if rows == 0 {
		return errs.SymbolNotFound
	}
	return nil
}

// Remove deletes the position if present. Removing an absent symbol still
// succeeds.
func (s *Service) Remove(ctx context.Context, username, symbol string) errs.Error {
	a, bizErr := s.findAccount(ctx, username)
	if bizErr != nil {
		return bizErr
	}

	if _, err := s.accounts.DeleteHolding(ctx, a.ID, symbol); err != nil {
		hlog.CtxErrorf(ctx, "delete holding err: %v", err)
		return errs.ServerError
	}
	return nil
}

func (s *Service) findAccount(ctx context.Context, username string) (*storage.AccountRecord, errs.Error) {
	a, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		hlog.CtxErrorf(ctx, "find account err: %v", err)
		return nil, errs.ServerError
	}
	if a == nil {
		return nil, errs.AccountNotFound
	}
	return a, nil
}
