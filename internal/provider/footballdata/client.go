// Package footballdata wraps the football-data.org v2 API, the structured
// provider: authoritative competition, team, and match schedule data.
//
// football-data.org uses header token auth (X-Auth-Token) and signals
// application errors with an errorCode field in an otherwise-200 body.
package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const baseURL = "https://api.football-data.org/v2"

// Client is the HTTP client for football-data.org endpoints.
type Client struct {
	httpClient *http.Client
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a client with rate limiting. The free tier allows 10
// requests per minute; requestsPerMinute should not exceed the plan's cap.
func NewClient(apiKey string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// errorProbe detects application-level error payloads.
type errorProbe struct {
	ErrorCode int    `json:"errorCode"`
	Error     int    `json:"error"`
	Message   string `json:"message"`
}

// get performs a rate-limited GET. Application-signaled errors (errorCode
// payloads, 400/404) yield (nil, nil): the caller sees "nothing available",
// the same as zero real results. Transport failures return an error.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		c.logger.Debug("football-data empty response", "path", path, "status", resp.StatusCode)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("football-data %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	var probe errorProbe
	if err := json.Unmarshal(body, &probe); err == nil && probe.ErrorCode != 0 {
		c.logger.Debug("football-data error payload", "path", path,
			"code", probe.ErrorCode, "message", probe.Message)
		return nil, nil
	}

	return body, nil
}

// truncate returns a truncated string for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
