package openweather

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/habeeblht17/mcp-tools-server/internal/config"
	"github.com/habeeblht17/mcp-tools-server/internal/metrics"
	"github.com/habeeblht17/mcp-tools-server/pkg/errors"
)

// Current is the subset of the OpenWeatherMap current-weather payload the
// weather tool consumes.
type Current struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Client calls the OpenWeatherMap current-weather endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates an OpenWeatherMap client
func New(cfg config.WeatherConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// CurrentByLocation fetches current weather for a free-form location string.
// Returns errors.ErrNotConfigured without any network call when no API key
// is set, errors.ErrNotFound on HTTP 404 and errors.ErrUnavailable on
// transport failures.
func (c *Client) CurrentByLocation(ctx context.Context, location string) (*Current, error) {
	if c.apiKey == "" {
		return nil, errors.ErrNotConfigured
	}

	start := time.Now()
	current, err := c.fetchCurrent(ctx, location)
	metrics.RecordUpstreamCall("openweather", time.Since(start), err)
	return current, err
}

func (c *Client) fetchCurrent(ctx context.Context, location string) (*Current, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric") // Celsius

	reqURL := c.baseURL + "/weather?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create weather request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnavailable, "weather request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Wrapf(errors.ErrNotFound, "location %q", location)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &errors.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var current Current
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		return nil, errors.Wrap(err, "decode weather response")
	}

	return &current, nil
}
