// Package newsapi fetches headlines from the NewsAPI.org service and
// renders them as spoken-form summaries.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.NewsProvider = (*Client)(nil)

const (
	defaultBaseURL = "https://newsapi.org/v2"

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 10 * time.Second

	// The developer tier allows 100 requests per day; a conservative
	// throttle keeps bursts from burning it.
	callsPerMinute = 5

	// maxHeadlines caps how many titles go into the spoken summary.
	maxHeadlines = 3
)

// Client is a NewsAPI.org client.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a news client. The API key must be non-empty.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: newsapi key not configured", domain.ErrProviderUnavailable)
	}
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(callsPerMinute)/60, 1),
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// headlinesResponse is the subset of the /top-headlines payload we
// consume.
type headlinesResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title string `json:"title"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Headlines returns a spoken-form summary of the top headlines. An
// empty topic asks for general headlines.
func (c *Client) Headlines(ctx context.Context, topic string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	query := url.Values{}
	query.Set("apiKey", c.apiKey)
	if topic != "" {
		query.Set("q", topic)
	} else {
		query.Set("country", "us")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/top-headlines?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build news request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch headlines: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", fmt.Errorf("%w: newsapi rejected the api key", domain.ErrProviderUnavailable)
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: newsapi request quota exhausted", domain.ErrProviderUnavailable)
	default:
		return "", fmt.Errorf("news api returned status %d", resp.StatusCode)
	}

	var payload headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode news response: %w", err)
	}

	return spokenSummary(topic, payload), nil
}

// spokenSummary renders up to maxHeadlines titles as one spoken string.
func spokenSummary(topic string, news headlinesResponse) string {
	if len(news.Articles) == 0 {
		if topic != "" {
			return fmt.Sprintf("No recent headlines about %s.", topic)
		}
		return "No recent headlines."
	}

	var b strings.Builder
	if topic != "" {
		fmt.Fprintf(&b, "Top headlines about %s: ", topic)
	} else {
		b.WriteString("Top headlines: ")
	}

	count := len(news.Articles)
	if count > maxHeadlines {
		count = maxHeadlines
	}
	titles := make([]string, 0, count)
	for _, article := range news.Articles[:count] {
		title := article.Title
		if article.Source.Name != "" {
			title += ", from " + article.Source.Name
		}
		titles = append(titles, title)
	}
	b.WriteString(strings.Join(titles, ". "))
	b.WriteString(".")
	return b.String()
}
