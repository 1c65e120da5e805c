package worldtime

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/habeeblht17/mcp-tools-server/internal/config"
	"github.com/habeeblht17/mcp-tools-server/internal/metrics"
	"github.com/habeeblht17/mcp-tools-server/pkg/errors"
)

// TimezoneInfo is the WorldTimeAPI timezone payload.
type TimezoneInfo struct {
	Datetime   string `json:"datetime"`
	Timezone   string `json:"timezone"`
	UTCOffset  string `json:"utc_offset"`
	DayOfYear  int    `json:"day_of_year"`
	WeekNumber int    `json:"week_number"`
}

// Client calls WorldTimeAPI. No authentication required.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a WorldTimeAPI client
func New(cfg config.WorldTimeConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Timezone fetches current time info for an IANA timezone identifier.
func (c *Client) Timezone(ctx context.Context, id string) (*TimezoneInfo, error) {
	start := time.Now()
	info, err := c.fetchTimezone(ctx, id)
	metrics.RecordUpstreamCall("worldtime", time.Since(start), err)
	return info, err
}

func (c *Client) fetchTimezone(ctx context.Context, id string) (*TimezoneInfo, error) {
	// IANA ids contain a slash that belongs in the path (e.g. Asia/Tokyo)
	reqURL := c.baseURL + "/timezone/" + id

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create timezone request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnavailable, "timezone request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &errors.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var info TimezoneInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "decode timezone response")
	}

	return &info, nil
}
