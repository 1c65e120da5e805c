package units

import (
	"sort"
	"strings"
)

// Conversion factors relative to the category's base unit. Same-category
// conversions route through the base: value * from-factor / to-factor.

// lengthUnits maps unit aliases to meters
var lengthUnits = map[string]float64{
	"meters": 1, "m": 1,
	"kilometers": 1000, "km": 1000,
	"miles": 1609.34,
	"feet":  0.3048, "ft": 0.3048,
	"inches": 0.0254, "in": 0.0254,
	"yards": 0.9144, "yd": 0.9144,
	"centimeters": 0.01, "cm": 0.01,
	"millimeters": 0.001, "mm": 0.001,
}

// weightUnits maps unit aliases to kilograms
var weightUnits = map[string]float64{
	"kilograms": 1, "kg": 1,
	"grams": 0.001, "g": 0.001,
	"pounds": 0.453592, "lbs": 0.453592,
	"ounces": 0.0283495, "oz": 0.0283495,
	"tons": 1000, "tonnes": 1000,
}

// supportedUnits lists a factor table's aliases sorted for stable error
// messages.
func supportedUnits(table map[string]float64) string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
