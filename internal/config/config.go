package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/habeeblht17/mcp-tools-server/pkg/errors"
)

type Config struct {
	App       AppConfig
	Weather   WeatherConfig
	Currency  CurrencyConfig
	WorldTime WorldTimeConfig
	Metrics   MetricsConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"mcp-tools-server"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// WeatherConfig configures the OpenWeatherMap client. An empty APIKey is a
// valid state: the weather tool then reports a configuration error per
// invocation instead of calling out.
type WeatherConfig struct {
	APIKey  string        `envconfig:"OPENWEATHER_API_KEY"`
	BaseURL string        `envconfig:"OPENWEATHER_BASE_URL" default:"http://api.openweathermap.org/data/2.5"`
	Timeout time.Duration `envconfig:"OPENWEATHER_TIMEOUT" default:"10s"`
}

// CurrencyConfig configures the ExchangeRate-API client.
type CurrencyConfig struct {
	APIKey  string        `envconfig:"EXCHANGERATE_API_KEY"`
	BaseURL string        `envconfig:"EXCHANGERATE_BASE_URL" default:"https://v6.exchangerate-api.com/v6"`
	Timeout time.Duration `envconfig:"EXCHANGERATE_TIMEOUT" default:"10s"`
}

// WorldTimeConfig configures the WorldTimeAPI client used by the timezone
// tool's primary lookup. No credential needed.
type WorldTimeConfig struct {
	BaseURL string        `envconfig:"WORLDTIME_BASE_URL" default:"http://worldtimeapi.org/api"`
	Timeout time.Duration `envconfig:"WORLDTIME_TIMEOUT" default:"5s"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"false"`
	Port    int  `envconfig:"METRICS_PORT" default:"9090"`
}

// HasAPIKey reports whether the weather credential is present
func (c WeatherConfig) HasAPIKey() bool { return c.APIKey != "" }

// HasAPIKey reports whether the currency credential is present
func (c CurrencyConfig) HasAPIKey() bool { return c.APIKey != "" }

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
