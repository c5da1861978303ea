package user

import (
	"context"

	"stock_tracker/be/biz/model/convert"
	"stock_tracker/be/biz/model/domain"
	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/model/storage"
	"stock_tracker/be/biz/util/hash"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type AccountRepo interface {
	Create(ctx context.Context, a *storage.AccountRecord) (*storage.AccountRecord, error)
	FindByUsername(ctx context.Context, username string) (*storage.AccountRecord, error)
}

type Service struct {
	accounts AccountRepo
}

func New(accounts AccountRepo) *Service {
	return &Service{accounts: accounts}
}

// Register validates the raw request body, hashes the password and creates
// the account. The duplicate check is repeated at insert time so that two
// concurrent registrations of the same username cannot both pass.
func (s *Service) Register(ctx context.Context, body map[string]any) (*domain.Account, errs.Error) {
	in, vErr := ValidateRegistration(body)
	if vErr != nil {
		return nil, vErr
	}

	existing, err := s.accounts.FindByUsername(ctx, in.Username)
	if err != nil {
		hlog.CtxErrorf(ctx, "find account err: %v", err)
		return nil, errs.ServerError
	}
	if existing != nil {
		return nil, errs.UsernameTaken
	}

	hashed, err := hash.Hash(in.Password)
	if err != nil {
		hlog.CtxErrorf(ctx, "hash password err: %v", err)
		return nil, errs.ServerError
	}

	rec := &storage.AccountRecord{
		Username:     in.Username,
		PasswordHash: hashed,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	created, err := s.accounts.Create(ctx, rec)
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.UsernameTaken
		}
		hlog.CtxErrorf(ctx, "create account err: %v", err)
		return nil, errs.ServerError
	}
	return convert.AccountRecordToDomain(created), nil
}

// Authenticate checks a username/password pair. Unknown usernames and wrong
// passwords are indistinguishable to the caller, and the dummy comparison
// keeps the timing uniform too.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Account, errs.Error) {
	a, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		hlog.CtxErrorf(ctx, "find account err: %v", err)
		return nil, errs.ServerError
	}
	if a == nil {
		hash.DummyVerify(password)
		return nil, errs.Unauthorized
	}
	if !hash.Verify(password, a.PasswordHash) {
		return nil, errs.Unauthorized
	}
	return convert.AccountRecordToDomain(a), nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.Account, errs.Error) {
	a, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		hlog.CtxErrorf(ctx, "find account err: %v", err)
		return nil, errs.ServerError
	}
	if a == nil {
		return nil, errs.AccountNotFound
	}
	return convert.AccountRecordToDomain(a), nil
}
