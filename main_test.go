package be_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	be "stock_tracker/be"
	"stock_tracker/be/biz/config"
	"stock_tracker/be/biz/middleware/auth"
	"stock_tracker/be/biz/model/dto"
	"stock_tracker/be/biz/model/errs"
	"stock_tracker/be/biz/model/storage"
	usersvc "stock_tracker/be/biz/service/user"

	"github.com/alicebob/miniredis/v2"
	"github.com/bytedance/mockey"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/glebarez/sqlite"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

var (
	testEngine *server.Hertz
	testDB     *gorm.DB
	testRedis  *redis.Client
)

func TestMain(t *testing.M) {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/stock/"):
			w.Write([]byte(`{"symbol":"EBAY","latestPrice":33.5}`))
		case r.URL.Path == "/search":
			w.Write([]byte(`[{"symbol":"EBAY","securityName":"eBay Inc."}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	dir, err := os.MkdirTemp("", "stock_tracker_test_conf_*")
	if err != nil {
		panic(err)
	}
	confPath := filepath.Join(dir, "deploy.yml")
	confStr := `server:
  addr: ":0"

mysql:
  db_name: ""
  ip: "127.0.0.1"
  port: 3306
  username: ""
  password: ""

redis:
  ip: "` + mr.Host() + `"
  port: ` + mr.Port() + `
  password: ""
  db: 0

jwt:
  secret: "` + testSecret + `"
  expiration: 3600
  issuer: "test"

cors:
  allow_origins:
    - "*"
  allow_methods:
    - "GET"
  allow_headers:
    - "Origin"
  allow_credentials: true
  max_age: 600

rate_limit:
  - path: "/api/users"
    window_seconds: 1
    limit: 1000
  - path: "/api/auth/login"
    window_seconds: 1
    limit: 1000
  - path: "/api/auth/refresh"
    window_seconds: 1
    limit: 1000

logger:
  level: "error"
  dir: "` + dir + `"
  file_name: "test.log"

market:
  base_url: "` + upstream.URL + `"
  api_key: "test-key"
  timeout_seconds: 2
`
	if err := os.WriteFile(confPath, []byte(confStr), 0600); err != nil {
		panic(err)
	}
	config.Init(confPath)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	// 内存库只允许一个连接,避免连接池拿到空库
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&storage.AccountRecord{}, &storage.HoldingRecord{}); err != nil {
		panic(err)
	}
	testDB = db

	testRedis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	testEngine = be.NewEngine(testDB, testRedis)

	code := t.Run()
	upstream.Close()
	mr.Close()
	os.Exit(code)
}

func newTestServer(t *testing.T) *server.Hertz {
	t.Helper()
	testDB.Exec("DELETE FROM holdings")
	testDB.Exec("DELETE FROM accounts")
	return testEngine
}

func perform(h *server.Hertz, method, url string, body string, headers ...ut.Header) *ut.ResponseRecorder {
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	allHeaders := append([]ut.Header{{Key: "Content-Type", Value: "application/json"}}, headers...)
	return ut.PerformRequest(h.Engine, method, url, b, allHeaders...)
}

func basicAuth(username, password string) ut.Header {
	return ut.Header{
		Key:   "Authorization",
		Value: "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password)),
	}
}

func bearer(token string) ut.Header {
	return ut.Header{Key: "Authorization", Value: "Bearer " + token}
}

func decodeErrorResp(t *testing.T, respBody []byte) dto.ErrorResp {
	t.Helper()
	var r dto.ErrorResp
	assert.Nil(t, json.Unmarshal(respBody, &r))
	return r
}

func decodeAccountResp(t *testing.T, respBody []byte) dto.AccountResp {
	t.Helper()
	var r dto.AccountResp
	assert.Nil(t, json.Unmarshal(respBody, &r))
	return r
}

func registerUser(t *testing.T, h *server.Hertz, username, password string) {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `","user":{"firstName":"Example","lastName":"User"}}`
	w := perform(h, http.MethodPost, "/api/users", body)
	assert.DeepEqual(t, http.StatusCreated, w.Result().StatusCode())
}

func loginUser(t *testing.T, h *server.Hertz, username, password string) string {
	t.Helper()
	w := perform(h, http.MethodPost, "/api/auth/login", "", basicAuth(username, password))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	var r dto.LoginResp
	assert.Nil(t, json.Unmarshal(w.Result().Body(), &r))
	assert.NotEqual(t, "", r.AuthToken)
	return r.AuthToken
}

func parseClaims(t *testing.T, token string) *auth.Claims {
	t.Helper()
	var claims auth.Claims
	parsed, err := jwtlib.ParseWithClaims(token, &claims, func(token *jwtlib.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.Nil(t, err)
	assert.True(t, parsed.Valid)
	assert.DeepEqual(t, "HS256", parsed.Method.Alg())
	return &claims
}

func TestPing(t *testing.T) {
	h := newTestServer(t)

	w := perform(h, http.MethodGet, "/ping", "")
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

	var r dto.PingResp
	assert.Nil(t, json.Unmarshal(resp.Body(), &r))
	assert.True(t, r.OK)
}

func TestRegister_Rejects(t *testing.T) {
	h := newTestServer(t)

	cases := []struct {
		name     string
		body     string
		message  string
		location string
	}{
		{"missing username", `{"password":"examplePass"}`, "Missing field", "username"},
		{"missing password", `{"username":"exampleUser"}`, "Missing field", "password"},
		{"non-string username", `{"username":1234,"password":"examplePass"}`, "Incorrect field type: expected string", "username"},
		{"non-string password", `{"username":"exampleUser","password":1234}`, "Incorrect field type: expected string", "password"},
		{"non-string first name", `{"username":"exampleUser","password":"examplePass","user":{"firstName":1234,"lastName":"User"}}`, "Incorrect field type: expected string", "user"},
		{"non-string last name", `{"username":"exampleUser","password":"examplePass","user":{"firstName":"Example","lastName":1234}}`, "Incorrect field type: expected string", "user"},
		{"non-trimmed username", `{"username":" exampleUser ","password":"examplePass"}`, "Cannot start or end with whitespace", "username"},
		{"non-trimmed password", `{"username":"exampleUser","password":" examplePass "}`, "Cannot start or end with whitespace", "password"},
		{"empty username", `{"username":"","password":"examplePass"}`, "Must be at least 1 characters long", "username"},
		{"password too short", `{"username":"exampleUser","password":"123456789"}`, "Must be at least 10 characters long", "password"},
		{"password too long", `{"username":"exampleUser","password":"` + strings.Repeat("a", 73) + `"}`, "Must be at most 72 characters long", "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(h, http.MethodPost, "/api/users", tc.body)
			resp := w.Result()
			assert.DeepEqual(t, http.StatusUnprocessableEntity, resp.StatusCode())

			r := decodeErrorResp(t, resp.Body())
			assert.DeepEqual(t, "ValidationError", r.Reason)
			assert.DeepEqual(t, tc.message, r.Message)
			assert.DeepEqual(t, tc.location, r.Location)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	h := newTestServer(t)

	body := `{"username":"a@x.com","password":"1234567890","user":{"firstName":"A","lastName":"B"}}`
	w := perform(h, http.MethodPost, "/api/users", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusCreated, resp.StatusCode())

	r := decodeAccountResp(t, resp.Body())
	assert.DeepEqual(t, "a@x.com", r.Username)
	assert.DeepEqual(t, "A B", r.Name)
	assert.DeepEqual(t, 0, len(r.Stocks))

	// 密码以hash存储,明文可验证
	var rec storage.AccountRecord
	assert.Nil(t, testDB.First(&rec, "username = ?", "a@x.com").Error)
	assert.NotEqual(t, "1234567890", rec.PasswordHash)
}

func TestRegister_TrimsProfileNames(t *testing.T) {
	h := newTestServer(t)

	body := `{"username":"exampleUser","password":"examplePass","user":{"firstName":" Example ","lastName":" User "}}`
	w := perform(h, http.MethodPost, "/api/users", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusCreated, resp.StatusCode())

	r := decodeAccountResp(t, resp.Body())
	assert.DeepEqual(t, "Example User", r.Name)

	var rec storage.AccountRecord
	assert.Nil(t, testDB.First(&rec, "username = ?", "exampleUser").Error)
	assert.DeepEqual(t, "Example", rec.FirstName)
	assert.DeepEqual(t, "User", rec.LastName)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	h := newTestServer(t)

	registerUser(t, h, "exampleUser", "examplePass")

	body := `{"username":"exampleUser","password":"anotherPass123"}`
	w := perform(h, http.MethodPost, "/api/users", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusUnprocessableEntity, resp.StatusCode())

	r := decodeErrorResp(t, resp.Body())
	assert.DeepEqual(t, "ValidationError", r.Reason)
	assert.DeepEqual(t, "Username already taken", r.Message)
	assert.DeepEqual(t, "username", r.Location)

	// 第一个账号不受影响
	var count int64
	assert.Nil(t, testDB.Model(&storage.AccountRecord{}).Where("username = ?", "exampleUser").Count(&count).Error)
	assert.DeepEqual(t, int64(1), count)
}

func TestRegister_MalformedBody(t *testing.T) {
	h := newTestServer(t)

	w := perform(h, http.MethodPost, "/api/users", "{")
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())
}

func TestRegister_ServerError(t *testing.T) {
	h := newTestServer(t)

	patch := mockey.Mock((*usersvc.Service).Register).
		Return(nil, errs.ServerError).
		Build()
	defer patch.UnPatch()

	body := `{"username":"exampleUser","password":"examplePass"}`
	w := perform(h, http.MethodPost, "/api/users", body)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusInternalServerError, resp.StatusCode())

	r := decodeErrorResp(t, resp.Body())
	assert.DeepEqual(t, "InternalError", r.Reason)
	assert.DeepEqual(t, "Internal server error", r.Message)
}

func TestLogin(t *testing.T) {
	h := newTestServer(t)
	registerUser(t, h, "exampleUser", "examplePass")

	t.Run("no credentials", func(t *testing.T) {
		w := perform(h, http.MethodPost, "/api/auth/login", "")
		resp := w.Result()
		assert.DeepEqual(t, http.StatusUnauthorized, resp.StatusCode())
		assert.DeepEqual(t, "AuthError", decodeErrorResp(t, resp.Body()).Reason)
	})

	t.Run("incorrect username", func(t *testing.T) {
		w := perform(h, http.MethodPost, "/api/auth/login", "", basicAuth("wrongUsername", "examplePass"))
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("incorrect password", func(t *testing.T) {
		w := perform(h, http.MethodPost, "/api/auth/login", "", basicAuth("exampleUser", "wrongPassword"))
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("identical rejection shape for both causes", func(t *testing.T) {
		w1 := perform(h, http.MethodPost, "/api/auth/login", "", basicAuth("wrongUsername", "examplePass"))
		w2 := perform(h, http.MethodPost, "/api/auth/login", "", basicAuth("exampleUser", "wrongPassword"))
		assert.DeepEqual(t, w1.Result().StatusCode(), w2.Result().StatusCode())
		assert.DeepEqual(t, string(w1.Result().Body()), string(w2.Result().Body()))
	})

	t.Run("valid credentials return a token", func(t *testing.T) {
		token := loginUser(t, h, "exampleUser", "examplePass")
		claims := parseClaims(t, token)
		assert.DeepEqual(t, "exampleUser", claims.User.Username)
		assert.DeepEqual(t, "Example", claims.User.FirstName)
		assert.DeepEqual(t, "User", claims.User.LastName)
	})
}

func TestRefresh(t *testing.T) {
	h := newTestServer(t)
	registerUser(t, h, "exampleUser", "examplePass")

	t.Run("no credentials", func(t *testing.T) {
		w := perform(h, http.MethodPost, "/api/auth/refresh", "")
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("mis-signed token", func(t *testing.T) {
		token := signTestToken(t, "wrongSecret", time.Now().Add(time.Hour))
		w := perform(h, http.MethodPost, "/api/auth/refresh", "", bearer(token))
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("expired token", func(t *testing.T) {
		token := signTestToken(t, testSecret, time.Now().Add(-10*time.Second))
		w := perform(h, http.MethodPost, "/api/auth/refresh", "", bearer(token))
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("unsigned token", func(t *testing.T) {
		token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.RegisteredClaims{
			Subject:   "exampleUser",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		})
		tokenStr, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
		assert.Nil(t, err)
		w := perform(h, http.MethodPost, "/api/auth/refresh", "", bearer(tokenStr))
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("valid token gets a newer expiry", func(t *testing.T) {
		original := loginUser(t, h, "exampleUser", "examplePass")
		originalClaims := parseClaims(t, original)

		w := perform(h, http.MethodPost, "/api/auth/refresh", "", bearer(original))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusOK, resp.StatusCode())

		var r dto.RefreshResp
		assert.Nil(t, json.Unmarshal(resp.Body(), &r))
		refreshedClaims := parseClaims(t, r.AuthToken)

		assert.DeepEqual(t, originalClaims.User, refreshedClaims.User)
		assert.True(t, refreshedClaims.ExpiresAt.Unix() >= originalClaims.ExpiresAt.Unix())
	})
}

func signTestToken(t *testing.T, secret string, expAt time.Time) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "exampleUser",
			ExpiresAt: jwtlib.NewNumericDate(expAt),
		},
		User: auth.Payload{Username: "exampleUser", FirstName: "Example", LastName: "User"},
	})
	tokenStr, err := token.SignedString([]byte(secret))
	assert.Nil(t, err)
	return tokenStr
}

func TestStocks_RequireToken(t *testing.T) {
	h := newTestServer(t)

	for _, route := range []struct{ method, url string }{
		{http.MethodGet, "/api/stocks/exampleUser"},
		{http.MethodPost, "/api/stocks/exampleUser"},
		{http.MethodPut, "/api/stocks/exampleUser/EBAY"},
		{http.MethodDelete, "/api/stocks/exampleUser/EBAY"},
	} {
		w := perform(h, route.method, route.url, "")
		resp := w.Result()
		assert.DeepEqual(t, http.StatusUnauthorized, resp.StatusCode())
		assert.DeepEqual(t, "AuthError", decodeErrorResp(t, resp.Body()).Reason)
	}
}

func TestStocks_UpsertAndList(t *testing.T) {
	h := newTestServer(t)
	registerUser(t, h, "exampleUser", "examplePass")
	token := loginUser(t, h, "exampleUser", "examplePass")

	// 初始为空
	w := perform(h, http.MethodGet, "/api/stocks/exampleUser", "", bearer(token))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	var stocks []dto.HoldingResp
	assert.Nil(t, json.Unmarshal(w.Result().Body(), &stocks))
	assert.DeepEqual(t, 0, len(stocks))

	// 新symbol追加到末尾,返回200和投影
	w = perform(h, http.MethodPost, "/api/stocks/exampleUser", `{"symbol":"GOOG","units":5}`, bearer(token))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	w = perform(h, http.MethodPost, "/api/stocks/exampleUser", `{"symbol":"EBAY","units":10}`, bearer(token))
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())
	r := decodeAccountResp(t, resp.Body())
	assert.DeepEqual(t, 2, len(r.Stocks))
	assert.DeepEqual(t, dto.HoldingResp{Symbol: "EBAY", Units: 10}, r.Stocks[1])

	// 已有symbol原位更新,返回204
	w = perform(h, http.MethodPost, "/api/stocks/exampleUser", `{"symbol":"EBAY","units":40}`, bearer(token))
	assert.DeepEqual(t, http.StatusNoContent, w.Result().StatusCode())

	w = perform(h, http.MethodGet, "/api/stocks/exampleUser", "", bearer(token))
	assert.Nil(t, json.Unmarshal(w.Result().Body(), &stocks))
	assert.DeepEqual(t, 2, len(stocks))
	assert.DeepEqual(t, dto.HoldingResp{Symbol: "GOOG", Units: 5}, stocks[0])
	assert.DeepEqual(t, dto.HoldingResp{Symbol: "EBAY", Units: 40}, stocks[1])
}

func TestStocks_UpsertValidation(t *testing.T) {
	h := newTestServer(t)
	registerUser(t, h, "exampleUser", "examplePass")
	token := loginUser(t, h, "exampleUser", "examplePass")

	t.Run("missing symbol", func(t *testing.T) {
		w := perform(h, http.MethodPost, "/api/stocks/exampleUser", `{"units":10}`, bearer(token))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusBadRequest, resp.StatusCode())
		r := decodeErrorResp(t, resp.Body())
		assert.DeepEqual(t, "MissingFieldError", r.Reason)
		assert.DeepEqual(t, "symbol", r.Location)
	})

	t.Run("missing units", func(t *testing.T) {
		w := perform(h, http.MethodPost, "/api/stocks/exampleUser", `{"symbol":"EBAY"}`, bearer(token))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusBadRequest, resp.StatusCode())
		assert.DeepEqual(t, "units", decodeErrorResp(t, resp.Body()).Location)
	})

	t.Run("unknown username", func(t *testing.T) {
		w := perform(h, http.MethodPost, "/api/stocks/nonExistent", `{"symbol":"EBAY","units":10}`, bearer(token))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusNotFound, resp.StatusCode())
		assert.DeepEqual(t, "NotFoundError", decodeErrorResp(t, resp.Body()).Reason)
	})
}

func TestStocks_SetUnits(t *testing.T) {
	h := newTestServer(t)
	registerUser(t, h, "exampleUser", "examplePass")
	token := loginUser(t, h, "exampleUser", "examplePass")

	w := perform(h, http.MethodPost, "/api/stocks/exampleUser", `{"symbol":"EBAY","units":10}`, bearer(token))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	t.Run("missing units", func(t *testing.T) {
		w := perform(h, http.MethodPut, "/api/stocks/exampleUser/EBAY", `{}`, bearer(token))
		assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())
	})

	t.Run("unknown symbol", func(t *testing.T) {
		w := perform(h, http.MethodPut, "/api/stocks/exampleUser/GOOG", `{"units":1}`, bearer(token))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusNotFound, resp.StatusCode())
		assert.DeepEqual(t, "NotFoundError", decodeErrorResp(t, resp.Body()).Reason)
	})

	t.Run("success", func(t *testing.T) {
		w := perform(h, http.MethodPut, "/api/stocks/exampleUser/EBAY", `{"units":40}`, bearer(token))
		assert.DeepEqual(t, http.StatusNoContent, w.Result().StatusCode())

		w = perform(h, http.MethodGet, "/api/stocks/exampleUser", "", bearer(token))
		var stocks []dto.HoldingResp
		assert.Nil(t, json.Unmarshal(w.Result().Body(), &stocks))
		assert.DeepEqual(t, []dto.HoldingResp{{Symbol: "EBAY", Units: 40}}, stocks)
	})
}

func TestStocks_Remove(t *testing.T) {
	h := newTestServer(t)
	registerUser(t, h, "exampleUser", "examplePass")
	token := loginUser(t, h, "exampleUser", "examplePass")

	w := perform(h, http.MethodPost, "/api/stocks/exampleUser", `{"symbol":"EBAY","units":10}`, bearer(token))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	w = perform(h, http.MethodDelete, "/api/stocks/exampleUser/EBAY", "", bearer(token))
	assert.DeepEqual(t, http.StatusNoContent, w.Result().StatusCode())

	// 删除不存在的symbol仍然成功
	w = perform(h, http.MethodDelete, "/api/stocks/exampleUser/EBAY", "", bearer(token))
	assert.DeepEqual(t, http.StatusNoContent, w.Result().StatusCode())

	w = perform(h, http.MethodGet, "/api/stocks/exampleUser", "", bearer(token))
	var stocks []dto.HoldingResp
	assert.Nil(t, json.Unmarshal(w.Result().Body(), &stocks))
	assert.DeepEqual(t, 0, len(stocks))
}

func TestMarket_Proxy(t *testing.T) {
	h := newTestServer(t)
	registerUser(t, h, "exampleUser", "examplePass")
	token := loginUser(t, h, "exampleUser", "examplePass")

	t.Run("quote requires token", func(t *testing.T) {
		w := perform(h, http.MethodGet, "/api/quote/EBAY", "")
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("quote passthrough", func(t *testing.T) {
		w := perform(h, http.MethodGet, "/api/quote/EBAY", "", bearer(token))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusOK, resp.StatusCode())
		assert.DeepEqual(t, `{"symbol":"EBAY","latestPrice":33.5}`, string(resp.Body()))
	})

	t.Run("search passthrough", func(t *testing.T) {
		w := perform(h, http.MethodGet, "/api/search?q=ebay", "", bearer(token))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusOK, resp.StatusCode())
		assert.DeepEqual(t, `[{"symbol":"EBAY","securityName":"eBay Inc."}]`, string(resp.Body()))
	})

	t.Run("search missing query", func(t *testing.T) {
		w := perform(h, http.MethodGet, "/api/search", "", bearer(token))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusBadRequest, resp.StatusCode())
		assert.DeepEqual(t, "q", decodeErrorResp(t, resp.Body()).Location)
	})
}
