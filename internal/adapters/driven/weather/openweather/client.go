// Package openweather fetches current conditions from the
// OpenWeatherMap API and renders them as spoken-form summaries.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.WeatherProvider = (*Client)(nil)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 10 * time.Second

	// The free tier allows 60 calls per minute; throttle at 1/sec to
	// stay clear of it.
	callsPerSecond = 1
)

// Client is an OpenWeatherMap API client.
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

// New creates a weather client. The API key must be non-empty; key
// validity is only discovered on first use.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: openweathermap api key not configured", domain.ErrProviderUnavailable)
	}
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(callsPerSecond), 1),
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// currentResponse is the subset of the /weather payload we consume.
type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
}

// Current returns a spoken-form summary of the current weather for the
// location.
func (c *Client) Current(ctx context.Context, location string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/weather?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", fmt.Errorf("%w: location %q", domain.ErrNotFound, location)
	case http.StatusUnauthorized:
		return "", fmt.Errorf("%w: openweathermap rejected the api key", domain.ErrProviderUnavailable)
	default:
		return "", fmt.Errorf("weather api returned status %d", resp.StatusCode)
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode weather response: %w", err)
	}

	return spokenSummary(payload), nil
}

// spokenSummary renders the payload the way the assistant reads it out.
func spokenSummary(w currentResponse) string {
	description := "unknown conditions"
	if len(w.Weather) > 0 && w.Weather[0].Description != "" {
		description = w.Weather[0].Description
	}
	place := w.Name
	if place == "" {
		place = "your location"
	}
	return fmt.Sprintf("It's %d degrees with %s in %s. Humidity is %d percent.",
		int(math.Round(w.Main.Temp)), description, place, w.Main.Humidity)
}
