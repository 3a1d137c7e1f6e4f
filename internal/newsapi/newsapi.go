package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketbrief/internal/core"
	"marketbrief/internal/logger"
)

// DefaultBaseURL is the NewsAPI "everything" endpoint.
const DefaultBaseURL = "https://newsapi.org/v2/everything"

// Provider is the interface to a news search backend.
type Provider interface {
	// Search queries the backend for articles matching the term.
	Search(ctx context.Context, query string, pageSize int) ([]core.RawArticle, error)

	// Name returns the name of the provider.
	Name() string
}

// Client queries the NewsAPI everything endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a NewsAPI client. An empty baseURL selects the default
// endpoint.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Name returns the name of this provider.
func (c *Client) Name() string {
	return "NewsAPI"
}

// response mirrors the provider's top-level JSON payload.
type response struct {
	Articles []core.RawArticle `json:"articles"`
}

// Search queries the everything endpoint sorted by publication date. A missing
// API key, transport failure, non-2xx status or malformed payload all return
// an error; callers are expected to degrade to a fallback dataset rather than
// surface the error to users.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]core.RawArticle, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("news API key is not configured")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute news request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("news request failed with status: %d", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	logger.Debug("News search completed", "query", query, "articles_found", len(payload.Articles))

	return payload.Articles, nil
}

// FeedQueries are the rotating search terms used for feed refreshes; one is
// picked at random per refresh.
var FeedQueries = []string{
	"stock market trading",
	"cryptocurrency bitcoin",
	"tech stocks FAANG",
	"nasdaq dow jones",
	"federal reserve interest rates",
	"economy inflation",
	"trading investment",
	"financial markets",
}
