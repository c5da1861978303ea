package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"stock_tracker/be/biz/config"
	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrUnexpectedJwtMethod = errors.New("unexpected jwt method")
	ErrJwtInvalid          = errors.New("jwt is invalid")
	ErrJwtExpired          = errors.New("jwt is expired")
)

const bearerPrefix = "Bearer "

// Payload is the identity claim embedded in every token and, after
// verification, stored on the request context.
type Payload struct {
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type Claims struct {
	jwt.RegisteredClaims

	User Payload `json:"user"`
}

// JWT gates a route on a bearer token. Every failure mode collapses to the
// same 401.
func JWT() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwtConf := config.GetJWTConfig()
		jwtStr := BearerToken(c)
		if jwtStr == "" {
			hlog.CtxInfof(ctx, "authorization failed, token is empty")
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		claims, err := validateToken(jwtStr, jwtConf.Secret)
		if err != nil {
			hlog.CtxInfof(ctx, "jwt invalid: %v", err)
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		ctx = WithIdentity(ctx, claims.User)
		c.Next(ctx)
	}
}

// GenerateToken signs a token for the identity, expiring after the
// configured lifetime.
func GenerateToken(ctx context.Context, payload Payload) (string, int64, error) {
	jwtConf := config.GetJWTConfig()
	expAt := time.Now().Add(expiration(jwtConf))

	jwtStr, err := generateToken(payload, expAt, jwtConf.Secret, jwtConf.Issuer)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate token err: %v", err)
		return "", 0, err
	}

	return jwtStr, expAt.Unix(), nil
}

// Refresh re-issues the identity of a still-valid token. The new expiry never
// moves backwards: it is the configured lifetime from now, or the old expiry
// if that is later.
func Refresh(ctx context.Context, tokenStr string) (string, int64, error) {
	jwtConf := config.GetJWTConfig()

	claims, err := validateToken(tokenStr, jwtConf.Secret)
	if err != nil {
		return "", 0, err
	}

	expAt := time.Now().Add(expiration(jwtConf))
	if claims.ExpiresAt != nil && claims.ExpiresAt.After(expAt) {
		expAt = claims.ExpiresAt.Time
	}

	jwtStr, err := generateToken(claims.User, expAt, jwtConf.Secret, jwtConf.Issuer)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate refreshed token err: %v", err)
		return "", 0, err
	}

	return jwtStr, expAt.Unix(), nil
}

type identityKey struct{}

func WithIdentity(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, identityKey{}, payload)
}

func GetPayload(ctx context.Context) Payload {
	payload, ok := ctx.Value(identityKey{}).(Payload)
	if ok {
		return payload
	}
	return Payload{}
}

func generateToken(payload Payload, expAt time.Time, secret, issuer string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Username,
			ExpiresAt: jwt.NewNumericDate(expAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
			ID:        uuid.New().String(),
		},
		User: payload,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// validateToken enforces the three independent checks: signature, expiry and
// signing algorithm. The HMAC allow-list blocks algorithm-confusion tokens.
func validateToken(tokenStr, secret string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrHashUnavailable
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrHashUnavailable) {
			return nil, ErrUnexpectedJwtMethod
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrJwtExpired
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrJwtInvalid
		}
		return nil, err
	}
	if !token.Valid {
		return nil, ErrJwtInvalid
	}

	return &claims, nil
}

func BearerToken(c *app.RequestContext) string {
	header := c.Request.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}

func expiration(conf config.JWTConf) time.Duration {
	if conf.Expiration > 0 {
		return time.Duration(conf.Expiration) * time.Second
	}

	return 7 * 24 * time.Hour
}
