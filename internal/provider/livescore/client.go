// Package livescore wraps the crowdscores-style live-score API: in-play
// and supplementary statistical data (probabilities, form, head-to-head)
// keyed by its own identifiers.
//
// Auth is a query-parameter api_key; application errors come back as an
// errorText field. The plan allows 100 requests per hour.
package livescore

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

const baseURL = "https://api.crowdscores.com/v1"

// requestsPerHour is the plan's cap; the limiter encapsulates it so the
// reconciliation core never sees rate-limit waits.
const requestsPerHour = 100

// Client is the HTTP client for live-score endpoints.
type Client struct {
	httpClient *http.Client
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a rate-limited client.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerHour) / 3600.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 5),
		logger:     logger,
	}
}

type errorProbe struct {
	ErrorText string `json:"errorText"`
}

// get performs a rate-limited GET. errorText payloads and 400/404 yield
// (nil, nil), surfacing as "nothing available" to the caller. Transport
// failures return an error.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	u := baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

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
		c.logger.Debug("live-score empty response", "path", path, "status", resp.StatusCode)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("live-score %s returned %d", path, resp.StatusCode)
	}

	var probe errorProbe
	if err := json.Unmarshal(body, &probe); err == nil && probe.ErrorText != "" {
		c.logger.Debug("live-score error payload", "path", path, "error", probe.ErrorText)
		return nil, nil
	}

	return body, nil
}
