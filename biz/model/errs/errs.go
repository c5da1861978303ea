package errs

import (
	"fmt"
	"net/http"
)

type Error interface {
	Error() string
	Reason() string
	Status() int
	Msg() string
	Location() string
	SetErr(err error) Error
	SetMsg(msg string) Error
	At(location string) Error
}

type bizError struct {
	reason   string
	status   int
	msg      string
	location string
}

func (bizErr *bizError) Error() string {
	if bizErr.location != "" {
		return fmt.Sprintf("%s:%s:%s", bizErr.reason, bizErr.location, bizErr.msg)
	}
	return fmt.Sprintf("%s:%s", bizErr.reason, bizErr.msg)
}

func (bizErr *bizError) Reason() string {
	return bizErr.reason
}

func (bizErr *bizError) Status() int {
	return bizErr.status
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) Location() string {
	return bizErr.location
}

func (bizErr *bizError) SetErr(err error) Error {
	return &bizError{
		reason:   bizErr.reason,
		status:   bizErr.status,
		msg:      err.Error(),
		location: bizErr.location,
	}
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return &bizError{
		reason:   bizErr.reason,
		status:   bizErr.status,
		msg:      msg,
		location: bizErr.location,
	}
}

func (bizErr *bizError) At(location string) Error {
	return &bizError{
		reason:   bizErr.reason,
		status:   bizErr.status,
		msg:      bizErr.msg,
		location: location,
	}
}

func New(reason string, status int, msg string) Error {
	return &bizError{
		reason: reason,
		status: status,
		msg:    msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Reason() == err2.Reason() &&
		err1.Msg() == err2.Msg() &&
		err1.Location() == err2.Location()
}

const (
	ReasonValidation   = "ValidationError"
	ReasonAuth         = "AuthError"
	ReasonNotFound     = "NotFoundError"
	ReasonMissingField = "MissingFieldError"
	ReasonInternal     = "InternalError"
)

var (
	ServerError    = New(ReasonInternal, http.StatusInternalServerError, "Internal server error")
	Unauthorized   = New(ReasonAuth, http.StatusUnauthorized, "Unauthorized")
	TooManyRequest = New(ReasonInternal, http.StatusTooManyRequests, "Too many requests")
	UpstreamError  = New(ReasonInternal, http.StatusBadGateway, "Market data provider unavailable")

	AccountNotFound = New(ReasonNotFound, http.StatusNotFound, "Account not found")
	SymbolNotFound  = New(ReasonNotFound, http.StatusNotFound, "Symbol not found")
	MissingField    = New(ReasonMissingField, http.StatusBadRequest, "Missing field")

	UsernameTaken = Validation("Username already taken").At("username")
)

// Validation builds a 422 error; the failing field is attached with At.
func Validation(msg string) Error {
	return New(ReasonValidation, http.StatusUnprocessableEntity, msg)
}
