package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/gauntlet/internal/models"
)

const (
	// DefaultTickersURL is the SEC ticker -> CIK index.
	DefaultTickersURL = "https://www.sec.gov/files/company_tickers.json"

	// DefaultSubmissionsBaseURL is the base URL for the submissions index.
	DefaultSubmissionsBaseURL = "https://data.sec.gov"

	// DefaultArchivesBaseURL is the base URL for filing documents.
	DefaultArchivesBaseURL = "https://www.sec.gov/Archives"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the SEC fair-access ceiling (requests per second).
	DefaultRateLimit = 10
)

// Client is an SEC EDGAR client. The SEC requires a User-Agent identifying
// the caller with a contact address on every request.
type Client struct {
	tickersURL         string
	submissionsBaseURL string
	archivesBaseURL    string
	userAgent          string
	httpClient         *http.Client
	logger             arbor.ILogger
	limiter            *rate.Limiter

	cikByTicker map[string]string // Lazily populated from the ticker index
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURLs sets custom endpoint URLs, used by tests.
func WithBaseURLs(tickersURL, submissionsBaseURL, archivesBaseURL string) ClientOption {
	return func(c *Client) {
		c.tickersURL = tickersURL
		c.submissionsBaseURL = submissionsBaseURL
		c.archivesBaseURL = archivesBaseURL
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

// NewClient creates a new EDGAR client.
func NewClient(userAgent string, opts ...ClientOption) *Client {
	c := &Client{
		tickersURL:         DefaultTickersURL,
		submissionsBaseURL: DefaultSubmissionsBaseURL,
		archivesBaseURL:    DefaultArchivesBaseURL,
		userAgent:          userAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter:     rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		cikByTicker: make(map[string]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a GET request and returns the raw body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &RateLimitError{RetryAfter: time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	if c.logger != nil {
		c.logger.Debug().
			Str("url", url).
			Msg("EDGAR request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			Endpoint:   url,
		}
	}

	return io.ReadAll(resp.Body)
}

// LookupCIK resolves a ticker to its zero-padded 10-digit CIK.
func (c *Client) LookupCIK(ctx context.Context, ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	if cik, ok := c.cikByTicker[ticker]; ok {
		return cik, nil
	}

	body, err := c.get(ctx, c.tickersURL)
	if err != nil {
		return "", err
	}

	// The index is an object keyed by row number, not an array.
	var index map[string]companyTicker
	if err := json.Unmarshal(body, &index); err != nil {
		return "", fmt.Errorf("failed to decode ticker index: %w", err)
	}

	for _, entry := range index {
		c.cikByTicker[strings.ToUpper(entry.Ticker)] = fmt.Sprintf("%010d", entry.CIK)
	}

	cik, ok := c.cikByTicker[ticker]
	if !ok {
		return "", fmt.Errorf("ticker %s not found in EDGAR index", ticker)
	}
	return cik, nil
}

// GetSubmissions retrieves the filing index for a zero-padded CIK.
func (c *Client) GetSubmissions(ctx context.Context, cik string) (*Submissions, error) {
	url := fmt.Sprintf("%s/submissions/CIK%s.json", c.submissionsBaseURL, cik)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var submissions Submissions
	if err := json.Unmarshal(body, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}
	return &submissions, nil
}

// DocumentURL builds the archive URL for a filing document.
// Accession numbers are stored without dashes in archive paths.
func (c *Client) DocumentURL(cik string, ref FilingRef) string {
	accession := strings.ReplaceAll(ref.AccessionNumber, "-", "")
	cikNum := strings.TrimLeft(cik, "0")
	if cikNum == "" {
		cikNum = "0"
	}
	return fmt.Sprintf("%s/edgar/data/%s/%s/%s", c.archivesBaseURL, cikNum, accession, ref.PrimaryDocument)
}

// FetchDocument downloads a filing document and normalizes it to plain text.
func (c *Client) FetchDocument(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	return NormalizeHTML(string(body)), nil
}

// LatestAnnual returns the most recent annual filing for a ticker, with
// 10-K preferred and 20-F as fallback for foreign issuers. Returns nil
// without error when the ticker has no annual filing on record.
func (c *Client) LatestAnnual(ctx context.Context, ticker string) (*models.Filing, error) {
	cik, err := c.LookupCIK(ctx, ticker)
	if err != nil {
		return nil, err
	}

	submissions, err := c.GetSubmissions(ctx, cik)
	if err != nil {
		return nil, err
	}

	refs := submissions.Filings.Recent.Refs()
	ref, formType := selectAnnual(refs)
	if ref == nil {
		if c.logger != nil {
			c.logger.Info().
				Str("ticker", ticker).
				Str("cik", cik).
				Msg("No annual filing found in submissions index")
		}
		return nil, nil
	}

	url := c.DocumentURL(cik, *ref)
	text, err := c.FetchDocument(ctx, url)
	if err != nil {
		// Some older filings only expose the rendered report page.
		fallback := strings.TrimSuffix(url, "/"+ref.PrimaryDocument) + "/R1.htm"
		text, err = c.FetchDocument(ctx, fallback)
		if err != nil {
			return nil, err
		}
		url = fallback
	}

	return &models.Filing{
		Ticker:     strings.ToUpper(ticker),
		CIK:        cik,
		FormType:   formType,
		FilingDate: ref.FilingDate,
		URL:        url,
		Text:       text,
		FetchedAt:  time.Now(),
	}, nil
}

// selectAnnual picks the most recent 10-K, falling back to the most recent
// 20-F. The submissions index lists filings newest first.
func selectAnnual(refs []FilingRef) (*FilingRef, models.FormType) {
	var fallback *FilingRef
	for i := range refs {
		switch refs[i].Form {
		case "10-K":
			return &refs[i], models.Form10K
		case "20-F":
			if fallback == nil {
				fallback = &refs[i]
			}
		}
	}
	if fallback != nil {
		return fallback, models.Form20F
	}
	return nil, ""
}

// CIKNumber returns the integer form of a zero-padded CIK.
func CIKNumber(cik string) int64 {
	n, _ := strconv.ParseInt(strings.TrimLeft(cik, "0"), 10, 64)
	return n
}
