package currency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habeeblht17/mcp-tools-server/internal/clients/exchangerate"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
	"github.com/habeeblht17/mcp-tools-server/pkg/errors"
)

type stubCurrency struct {
	conversion *exchangerate.PairConversion
	err        error
	calls      int
	lastFrom   string
	lastTo     string
}

func (s *stubCurrency) Pair(ctx context.Context, from, to string, amount float64) (*exchangerate.PairConversion, error) {
	s.calls++
	s.lastFrom = from
	s.lastTo = to
	return s.conversion, s.err
}

func exec(t *testing.T, deps shared.Deps, amount float64, from, to string) map[string]interface{} {
	t.Helper()
	result, err := New(deps).Execute(context.Background(), map[string]interface{}{
		"amount":        amount,
		"from_currency": from,
		"to_currency":   to,
	})
	require.NoError(t, err)
	return result
}

func TestConvertCurrency_Success(t *testing.T) {
	stub := &stubCurrency{conversion: &exchangerate.PairConversion{
		Result:            "success",
		ConversionRate:    0.9255,
		ConversionResult:  92.55123,
		TimeLastUpdateUTC: "Fri, 15 Mar 2024 00:00:01 +0000",
	}}

	result := exec(t, shared.Deps{Currency: stub}, 100, "usd", "eur")

	assert.Equal(t, shared.StatusSuccess, result["status"])
	assert.Equal(t, float64(100), result["amount"])
	assert.Equal(t, "USD", result["from_currency"])
	assert.Equal(t, "EUR", result["to_currency"])
	assert.Equal(t, 0.9255, result["conversion_rate"])
	assert.Equal(t, 92.55123, result["converted_amount"])
	assert.Equal(t, "100 USD = 92.55 EUR", result["formatted"])
	assert.Equal(t, "Fri, 15 Mar 2024 00:00:01 +0000", result["last_updated"])

	// Codes are upper-cased before the client sees them
	assert.Equal(t, "USD", stub.lastFrom)
	assert.Equal(t, "EUR", stub.lastTo)
}

func TestConvertCurrency_MissingLastUpdated(t *testing.T) {
	stub := &stubCurrency{conversion: &exchangerate.PairConversion{
		Result:           "success",
		ConversionRate:   1.27,
		ConversionResult: 63.5,
	}}

	result := exec(t, shared.Deps{Currency: stub}, 50, "GBP", "USD")

	assert.Equal(t, "N/A", result["last_updated"])
}

func TestConvertCurrency_MissingCredential(t *testing.T) {
	t.Run("client reports missing key", func(t *testing.T) {
		stub := &stubCurrency{err: errors.ErrNotConfigured}

		result := exec(t, shared.Deps{Currency: stub}, 100, "USD", "EUR")

		assert.Equal(t, shared.StatusError, result["status"])
		assert.Contains(t, result["error"], "ExchangeRate API key not configured")
	})

	t.Run("no client wired", func(t *testing.T) {
		result := exec(t, shared.Deps{}, 100, "USD", "EUR")

		assert.Equal(t, shared.StatusError, result["status"])
		assert.Contains(t, result["error"], "EXCHANGERATE_API_KEY")
	})
}

func TestConvertCurrency_Errors(t *testing.T) {
	t.Run("API payload error", func(t *testing.T) {
		stub := &stubCurrency{err: &errors.APIError{Reason: "unsupported-code"}}

		result := exec(t, shared.Deps{Currency: stub}, 100, "USD", "XXX")

		assert.Equal(t, shared.StatusError, result["status"])
		assert.Equal(t, "Currency conversion error: unsupported-code", result["error"])
	})

	t.Run("network failure", func(t *testing.T) {
		stub := &stubCurrency{err: errors.Wrapf(errors.ErrUnavailable, "request timed out")}

		result := exec(t, shared.Deps{Currency: stub}, 100, "USD", "EUR")

		assert.Equal(t, shared.StatusError, result["status"])
		assert.Contains(t, result["error"], "Network error:")
	})

	t.Run("unexpected failure", func(t *testing.T) {
		stub := &stubCurrency{err: errors.New("boom")}

		result := exec(t, shared.Deps{Currency: stub}, 100, "USD", "EUR")

		assert.Equal(t, shared.StatusError, result["status"])
		assert.Contains(t, result["error"], "Unexpected error:")
	})
}
