package timezone

import (
	"sort"
	"time"
)

// cityInfo maps a city to its IANA timezone and a fixed UTC offset. The
// offset is a standard-time approximation: it ignores daylight-saving
// transitions, so the calculated fallback can be an hour off for
// DST-observing cities while DST is in effect. The duration is precomputed
// in the literal so the fallback path has nothing left to parse and
// therefore cannot fail.
type cityInfo struct {
	Timezone string
	Offset   string
	offset   time.Duration
}

var cities = map[string]cityInfo{
	"london":       {"Europe/London", "+00:00", 0},
	"paris":        {"Europe/Paris", "+01:00", 1 * time.Hour},
	"new york":     {"America/New_York", "-05:00", -5 * time.Hour},
	"los angeles":  {"America/Los_Angeles", "-08:00", -8 * time.Hour},
	"tokyo":        {"Asia/Tokyo", "+09:00", 9 * time.Hour},
	"sydney":       {"Australia/Sydney", "+11:00", 11 * time.Hour},
	"dubai":        {"Asia/Dubai", "+04:00", 4 * time.Hour},
	"singapore":    {"Asia/Singapore", "+08:00", 8 * time.Hour},
	"mumbai":       {"Asia/Kolkata", "+05:30", 5*time.Hour + 30*time.Minute},
	"toronto":      {"America/Toronto", "-05:00", -5 * time.Hour},
	"berlin":       {"Europe/Berlin", "+01:00", 1 * time.Hour},
	"moscow":       {"Europe/Moscow", "+03:00", 3 * time.Hour},
	"beijing":      {"Asia/Shanghai", "+08:00", 8 * time.Hour},
	"hong kong":    {"Asia/Hong_Kong", "+08:00", 8 * time.Hour},
	"chicago":      {"America/Chicago", "-06:00", -6 * time.Hour},
	"mexico city":  {"America/Mexico_City", "-06:00", -6 * time.Hour},
	"sao paulo":    {"America/Sao_Paulo", "-03:00", -3 * time.Hour},
	"cairo":        {"Africa/Cairo", "+02:00", 2 * time.Hour},
	"lagos":        {"Africa/Lagos", "+01:00", 1 * time.Hour},
	"johannesburg": {"Africa/Johannesburg", "+02:00", 2 * time.Hour},
}

// supportedCities returns the known city names sorted for stable error
// messages.
func supportedCities() []string {
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
