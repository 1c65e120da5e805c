package timezone

import (
	"context"
	"strings"
	"time"

	"github.com/habeeblht17/mcp-tools-server/internal/tool"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
	"github.com/habeeblht17/mcp-tools-server/pkg/errors"
)

const timeLayout = "2006-01-02 15:04:05"

// New returns a tool that reports current time and timezone info for a known
// city. Resolution is two-tier: WorldTimeAPI first, and on any failure a
// local offset calculation that cannot itself fail. Once the city is found
// in the table the tool always produces a success envelope.
func New(deps shared.Deps) tool.Tool {
	log := deps.Logger()

	fn := func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		city, _ := args["city"].(string)

		info, ok := cities[strings.ToLower(strings.TrimSpace(city))]
		if !ok {
			log.Warnw("Tool: get_timezone_info unknown city", "city", city)
			return shared.Errorf("City '%s' not found in database. Supported cities: %s",
				city, strings.Join(supportedCities(), ", ")), nil
		}

		if deps.HasWorldTime() {
			result, err := fromWorldTime(ctx, deps, city, info)
			if err == nil {
				log.Infow("Tool: get_timezone_info success", "city", city, "source", "worldtime")
				return result, nil
			}
			// Tier-1 failures are deliberately swallowed; the fallback
			// below answers instead.
			log.Debugw("Tool: get_timezone_info worldtime lookup failed, using calculated time",
				"city", city, "error", err)
		}

		log.Infow("Tool: get_timezone_info success", "city", city, "source", "calculated")
		return calculated(deps, city, info), nil
	}

	return tool.NewBuilder(
		"get_timezone_info",
		"Get current time and timezone information for a given city",
		fn,
	).WithTimeout(10 * time.Second).WithMetrics().Build()
}

// fromWorldTime resolves via WorldTimeAPI. Any error return (transport,
// HTTP, malformed datetime) sends the caller to the calculated fallback.
func fromWorldTime(ctx context.Context, deps shared.Deps, city string, info cityInfo) (shared.Result, error) {
	data, err := deps.WorldTime.Timezone(ctx, info.Timezone)
	if err != nil {
		return nil, err
	}

	// WorldTimeAPI datetimes are ISO-8601 with an offset or a Z suffix
	dt, err := time.Parse(time.RFC3339, data.Datetime)
	if err != nil {
		return nil, errors.Wrap(err, "parse datetime")
	}

	return shared.Success(shared.Result{
		"city":         shared.Title(city),
		"timezone":     data.Timezone,
		"current_time": dt.Format(timeLayout),
		"utc_offset":   data.UTCOffset,
		"day_of_week":  dt.Weekday().String(),
		"day_of_year":  data.DayOfYear,
		"week_number":  data.WeekNumber,
	}), nil
}

// calculated derives local time by applying the table's fixed offset to the
// current UTC time. Pure local computation: no error path exists, which is
// what guarantees a known city always gets an answer. The fixed offset may
// be an hour off during daylight-saving periods.
func calculated(deps shared.Deps, city string, info cityInfo) shared.Result {
	local := deps.Clock().UTC().Add(info.offset)
	_, week := local.ISOWeek()

	return shared.Success(shared.Result{
		"city":         shared.Title(city),
		"timezone":     info.Timezone,
		"current_time": local.Format(timeLayout),
		"utc_offset":   info.Offset,
		"day_of_week":  local.Weekday().String(),
		"day_of_year":  local.YearDay(),
		"week_number":  week,
		"note":         "Using calculated time (WorldTimeAPI unavailable)",
	})
}
