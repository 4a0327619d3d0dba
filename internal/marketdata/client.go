package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/interfaces"
	"github.com/ternarybob/gauntlet/internal/models"
)

const (
	// DefaultBaseURL is the base URL for the EODHD API.
	DefaultBaseURL = "https://eodhd.com/api"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 10

	// DefaultExchange is the exchange suffix applied to bare tickers.
	DefaultExchange = "US"
)

// Client is an EODHD API client implementing interfaces.MarketDataProvider.
type Client struct {
	baseURL    string
	apiKey     string
	exchange   string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

var _ interfaces.MarketDataProvider = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithExchange sets the exchange suffix applied to bare tickers.
func WithExchange(exchange string) ClientOption {
	return func(c *Client) {
		c.exchange = exchange
	}
}

// NewClient creates a new market data client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		apiKey:   apiKey,
		exchange: DefaultExchange,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// symbol converts a ticker in any accepted form ("aapl", "NASDAQ:AAPL") into
// the provider's CODE.EXCHANGE format. Symbols already carrying a suffix
// ("GSPC.INDX") pass through unchanged.
func (c *Client) symbol(ticker string) string {
	if strings.Contains(ticker, ".") {
		return strings.ToUpper(ticker)
	}
	return common.ParseTicker(ticker).ProviderSymbol(c.exchange)
}

// get performs a GET request to the API.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return &RateLimitError{RetryAfter: time.Second}
	}

	// Add API token
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_token", c.apiKey)
	params.Set("fmt", "json")

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("url", c.baseURL+path).
			Msg("Market data API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// fundamentals retrieves the raw fundamentals payload for a symbol.
func (c *Client) fundamentals(ctx context.Context, symbol string) (*fundamentalsResponse, error) {
	var result fundamentalsResponse
	if err := c.get(ctx, "/fundamentals/"+symbol, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Financials retrieves the financial statement bundle for a ticker.
func (c *Client) Financials(ctx context.Context, ticker string) (*models.Financials, error) {
	sym := c.symbol(ticker)
	resp, err := c.fundamentals(ctx, sym)
	if err != nil {
		return nil, err
	}
	return mapFinancials(ticker, resp), nil
}

// Profile retrieves the company profile for a ticker.
func (c *Client) Profile(ctx context.Context, ticker string) (*models.Profile, error) {
	sym := c.symbol(ticker)
	resp, err := c.fundamentals(ctx, sym)
	if err != nil {
		return nil, err
	}
	return mapProfile(ticker, resp), nil
}

// Earnings retrieves the quarterly earnings history for a ticker, newest
// first.
func (c *Client) Earnings(ctx context.Context, ticker string) ([]models.EarningsEvent, error) {
	sym := c.symbol(ticker)
	resp, err := c.fundamentals(ctx, sym)
	if err != nil {
		return nil, err
	}
	return mapEarnings(resp), nil
}

// Prices retrieves daily close history for a symbol between from and to.
// The symbol may be a ticker or a benchmark index in provider format
// (e.g. "GSPC.INDX").
func (c *Client) Prices(ctx context.Context, symbol string, from, to time.Time) ([]models.PriceBar, error) {
	params := url.Values{}
	params.Set("period", "d")
	params.Set("order", "a")
	if !from.IsZero() {
		params.Set("from", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		params.Set("to", to.Format("2006-01-02"))
	}

	var result []eodBar
	if err := c.get(ctx, "/eod/"+c.symbol(symbol), params, &result); err != nil {
		return nil, err
	}

	return mapPriceBars(result), nil
}
