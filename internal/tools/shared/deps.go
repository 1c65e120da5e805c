package shared

import (
	"context"
	"time"

	"github.com/habeeblht17/mcp-tools-server/internal/clients/exchangerate"
	"github.com/habeeblht17/mcp-tools-server/internal/clients/openweather"
	"github.com/habeeblht17/mcp-tools-server/internal/clients/worldtime"
	"github.com/habeeblht17/mcp-tools-server/pkg/logger"
)

// WeatherAPI fetches current weather conditions
type WeatherAPI interface {
	CurrentByLocation(ctx context.Context, location string) (*openweather.Current, error)
}

// CurrencyAPI converts an amount between two currency codes
type CurrencyAPI interface {
	Pair(ctx context.Context, from, to string, amount float64) (*exchangerate.PairConversion, error)
}

// WorldTimeAPI fetches current time info for an IANA timezone identifier
type WorldTimeAPI interface {
	Timezone(ctx context.Context, id string) (*worldtime.TimezoneInfo, error)
}

// Deps bundles dependencies required by concrete tool implementations
type Deps struct {
	Weather   WeatherAPI
	Currency  CurrencyAPI
	WorldTime WorldTimeAPI

	// Now supplies the clock for the timezone tool's calculated fallback;
	// nil means time.Now
	Now func() time.Time

	Log *logger.Logger
}

// HasWeather reports whether the weather client is wired
func (d Deps) HasWeather() bool { return d.Weather != nil }

// HasCurrency reports whether the currency client is wired
func (d Deps) HasCurrency() bool { return d.Currency != nil }

// HasWorldTime reports whether the world-time client is wired
func (d Deps) HasWorldTime() bool { return d.WorldTime != nil }

// Clock returns the current time from the injected clock
func (d Deps) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Logger returns the configured logger, falling back to the global one
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}
