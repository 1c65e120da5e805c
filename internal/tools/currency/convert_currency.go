package currency

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habeeblht17/mcp-tools-server/internal/tool"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
	"github.com/habeeblht17/mcp-tools-server/pkg/errors"
)

const missingKeyMessage = "ExchangeRate API key not configured. Please add EXCHANGERATE_API_KEY to .env file"

// New returns a tool that converts an amount between currencies using live
// exchange rates.
func New(deps shared.Deps) tool.Tool {
	log := deps.Logger()

	fn := func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		amount, _ := args["amount"].(float64)
		from, _ := args["from_currency"].(string)
		to, _ := args["to_currency"].(string)

		from = strings.ToUpper(from)
		to = strings.ToUpper(to)

		if !deps.HasCurrency() {
			log.Warn("Tool: convert_currency called without currency client")
			return shared.Error(missingKeyMessage), nil
		}

		log.Debugw("Tool: convert_currency called", "amount", amount, "from", from, "to", to)

		conversion, err := deps.Currency.Pair(ctx, from, to, amount)
		if err != nil {
			return conversionError(err, deps), nil
		}

		lastUpdated := conversion.TimeLastUpdateUTC
		if lastUpdated == "" {
			lastUpdated = "N/A"
		}

		converted := decimal.NewFromFloat(conversion.ConversionResult)

		log.Infow("Tool: convert_currency success",
			"from", from, "to", to, "rate", conversion.ConversionRate)

		return shared.Success(shared.Result{
			"amount":           amount,
			"from_currency":    from,
			"to_currency":      to,
			"conversion_rate":  conversion.ConversionRate,
			"converted_amount": conversion.ConversionResult,
			"formatted": fmt.Sprintf("%s %s = %s %s",
				shared.FormatNumber(amount), from, converted.StringFixed(2), to),
			"last_updated": lastUpdated,
		}), nil
	}

	return tool.NewBuilder(
		"convert_currency",
		"Convert amount between different currencies using live exchange rates",
		fn,
	).WithTimeout(15 * time.Second).WithMetrics().Build()
}

func conversionError(err error, deps shared.Deps) shared.Result {
	log := deps.Logger()

	var apiErr *errors.APIError
	switch {
	case errors.Is(err, errors.ErrNotConfigured):
		log.Warn("Tool: convert_currency missing API key")
		return shared.Error(missingKeyMessage)
	case errors.As(err, &apiErr):
		log.Warnw("Tool: convert_currency API rejected request", "reason", apiErr.Reason)
		return shared.Errorf("Currency conversion error: %s", apiErr.Reason)
	case errors.Is(err, errors.ErrUnavailable):
		log.Errorw("Tool: convert_currency network failure", "error", err)
		return shared.Errorf("Network error: %v", err)
	default:
		log.Errorw("Tool: convert_currency unexpected failure", "error", err)
		return shared.Errorf("Unexpected error: %v", err)
	}
}
