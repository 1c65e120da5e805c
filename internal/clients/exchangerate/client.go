package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/habeeblht17/mcp-tools-server/internal/config"
	"github.com/habeeblht17/mcp-tools-server/internal/metrics"
	"github.com/habeeblht17/mcp-tools-server/pkg/errors"
)

// PairConversion is the ExchangeRate-API v6 pair-conversion payload.
type PairConversion struct {
	Result            string  `json:"result"`
	ErrorType         string  `json:"error-type"`
	ConversionRate    float64 `json:"conversion_rate"`
	ConversionResult  float64 `json:"conversion_result"`
	TimeLastUpdateUTC string  `json:"time_last_update_utc"`
}

// Client calls the ExchangeRate-API v6 pair-conversion endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates an ExchangeRate-API client
func New(cfg config.CurrencyConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Pair converts amount from one currency to another. Currency codes must
// already be upper-cased. Returns errors.ErrNotConfigured without any
// network call when no API key is set; an errors.APIError when the payload
// itself reports an error; errors.ErrUnavailable on transport failures.
func (c *Client) Pair(ctx context.Context, from, to string, amount float64) (*PairConversion, error) {
	if c.apiKey == "" {
		return nil, errors.ErrNotConfigured
	}

	start := time.Now()
	conversion, err := c.fetchPair(ctx, from, to, amount)
	metrics.RecordUpstreamCall("exchangerate", time.Since(start), err)
	return conversion, err
}

func (c *Client) fetchPair(ctx context.Context, from, to string, amount float64) (*PairConversion, error) {
	// Amount travels in the URL path, e.g. /v6/<key>/pair/USD/EUR/100
	reqURL := fmt.Sprintf("%s/%s/pair/%s/%s/%s",
		c.baseURL, c.apiKey, from, to, strconv.FormatFloat(amount, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create conversion request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnavailable, "conversion request failed: %v", err)
	}
	defer resp.Body.Close()

	// The API reports request-level errors inside a 200 payload as well, so
	// decode whenever a body is present and let the result field decide.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnavailable, "read conversion response: %v", err)
	}

	var conversion PairConversion
	if err := json.Unmarshal(body, &conversion); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &errors.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		}
		return nil, errors.Wrap(err, "decode conversion response")
	}

	if conversion.Result == "error" {
		reason := conversion.ErrorType
		if reason == "" {
			reason = "Unknown error"
		}
		return nil, &errors.APIError{Reason: reason}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &errors.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return &conversion, nil
}
