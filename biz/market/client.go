package market

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"stock_tracker/be/biz/config"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Client is a passthrough to the external market-data provider. The API key
// is appended server-side and never reaches clients. Responses are returned
// verbatim; no caching or retrying.
type Client struct {
	httpCli *client.Client
	baseURL string
	apiKey  string
}

func New() (*Client, error) {
	return NewWithConf(config.GetMarketConf())
}

func NewWithConf(conf config.MarketConf) (*Client, error) {
	timeout := time.Duration(conf.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpCli, err := client.NewClient(
		client.WithDialTimeout(timeout),
		client.WithClientReadTimeout(timeout),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		httpCli: httpCli,
		baseURL: conf.BaseURL,
		apiKey:  conf.APIKey,
	}, nil
}

// Quote fetches the current quote for one symbol.
func (c *Client) Quote(ctx context.Context, symbol string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/stock/%s/quote", url.PathEscape(symbol)), nil)
}

// Search looks up symbols matching the query.
func (c *Client) Search(ctx context.Context, query string) ([]byte, error) {
	return c.get(ctx, "/search", url.Values{"q": []string{query}})
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	if c.apiKey != "" {
		query.Set("token", c.apiKey)
	}

	uri := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		uri += "?" + encoded
	}

	req := protocol.AcquireRequest()
	res := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(res)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(uri)

	if err := c.httpCli.Do(ctx, req, res); err != nil {
		return nil, err
	}
	if res.StatusCode() != consts.StatusOK {
		return nil, fmt.Errorf("market data provider status %d", res.StatusCode())
	}

	body := make([]byte, len(res.Body()))
	copy(body, res.Body())
	return body, nil
}
