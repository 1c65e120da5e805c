package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/habeeblht17/mcp-tools-server/internal/tool"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
	"github.com/habeeblht17/mcp-tools-server/pkg/errors"
)

const missingKeyMessage = "OpenWeather API key not configured. Please add OPENWEATHER_API_KEY to .env file"

// New returns a tool that fetches current weather conditions for a free-form
// location string (city name, ZIP code or "City,Country").
func New(deps shared.Deps) tool.Tool {
	log := deps.Logger()

	fn := func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		location, _ := args["location"].(string)

		if !deps.HasWeather() {
			log.Warn("Tool: get_weather called without weather client")
			return shared.Error(missingKeyMessage), nil
		}

		log.Debugw("Tool: get_weather called", "location", location)

		current, err := deps.Weather.CurrentByLocation(ctx, location)
		if err != nil {
			return weatherError(location, err, deps), nil
		}

		description := ""
		if len(current.Weather) > 0 {
			description = shared.Title(current.Weather[0].Description)
		}

		log.Infow("Tool: get_weather success", "location", location, "temp", current.Main.Temp)

		return shared.Success(shared.Result{
			"location":    current.Name,
			"country":     current.Sys.Country,
			"temperature": shared.FormatNumber(current.Main.Temp) + "°C",
			"feels_like":  shared.FormatNumber(current.Main.FeelsLike) + "°C",
			"description": description,
			"humidity":    fmt.Sprintf("%d%%", current.Main.Humidity),
			"wind_speed":  shared.FormatNumber(current.Wind.Speed) + " m/s",
		}), nil
	}

	return tool.NewBuilder(
		"get_weather",
		"Retrieve current weather conditions for any city or location",
		fn,
	).WithTimeout(15 * time.Second).WithMetrics().Build()
}

func weatherError(location string, err error, deps shared.Deps) shared.Result {
	log := deps.Logger()

	switch {
	case errors.Is(err, errors.ErrNotConfigured):
		log.Warn("Tool: get_weather missing API key")
		return shared.Error(missingKeyMessage)
	case errors.Is(err, errors.ErrNotFound):
		log.Warnw("Tool: get_weather location not found", "location", location)
		return shared.Errorf("Location '%s' not found", location)
	case errors.Is(err, errors.ErrUnavailable):
		log.Errorw("Tool: get_weather network failure", "location", location, "error", err)
		return shared.Errorf("Network error: %v", err)
	default:
		log.Errorw("Tool: get_weather API failure", "location", location, "error", err)
		return shared.Errorf("API error: %v", err)
	}
}
