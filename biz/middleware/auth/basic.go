package auth

import (
	"context"
	"encoding/base64"
	"strings"

	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/service/user"
	"stock_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const basicPrefix = "Basic "

// Basic gates a route on raw username/password credentials. Missing header,
// unknown username and wrong password all produce the same 401.
func Basic(users *user.Service) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		username, password, ok := parseBasicAuth(c.Request.Header.Get("Authorization"))
		if !ok {
			hlog.CtxInfof(ctx, "authorization failed, basic credentials missing")
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		a, bizErr := users.Authenticate(ctx, username, password)
		if bizErr != nil {
			resp.AbortWithErr(c, bizErr)
			return
		}

		ctx = WithIdentity(ctx, Payload{
			Username:  a.Username,
			FirstName: a.FirstName,
			LastName:  a.LastName,
		})
		c.Next(ctx)
	}
}

func parseBasicAuth(header string) (username, password string, ok bool) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, basicPrefix))
	if err != nil {
		return "", "", false
	}
	return strings.Cut(string(decoded), ":")
}
