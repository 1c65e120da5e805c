package shared

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatNumber renders a float with the shortest exact representation,
// so 60 prints as "60" and 8046.7 as "8046.7".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Title upper-cases the first letter of each word, e.g. "light rain" ->
// "Light Rain". A cases.Caser is stateful, so build one per call.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
