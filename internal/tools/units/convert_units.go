package units

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/habeeblht17/mcp-tools-server/internal/tool"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
)

// New returns a tool that converts between common units of measurement in
// three categories: length, weight and temperature.
func New(deps shared.Deps) tool.Tool {
	log := deps.Logger()

	fn := func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		value, _ := args["value"].(float64)
		fromUnit, _ := args["from_unit"].(string)
		toUnit, _ := args["to_unit"].(string)
		category, _ := args["category"].(string)

		fromUnit = strings.ToLower(fromUnit)
		toUnit = strings.ToLower(toUnit)
		category = strings.ToLower(category)

		var result float64
		switch category {
		case "length":
			converted, ok := convertByFactor(value, fromUnit, toUnit, lengthUnits)
			if !ok {
				log.Warnw("Tool: convert_units invalid length unit", "from", fromUnit, "to", toUnit)
				return shared.Errorf("Invalid length units. Supported: %s", supportedUnits(lengthUnits)), nil
			}
			result = converted

		case "weight":
			converted, ok := convertByFactor(value, fromUnit, toUnit, weightUnits)
			if !ok {
				log.Warnw("Tool: convert_units invalid weight unit", "from", fromUnit, "to", toUnit)
				return shared.Errorf("Invalid weight units. Supported: %s", supportedUnits(weightUnits)), nil
			}
			result = converted

		case "temperature":
			converted, ok := convertTemperature(value, fromUnit, toUnit)
			if !ok {
				log.Warnw("Tool: convert_units invalid temperature unit", "from", fromUnit, "to", toUnit)
				return shared.Error("Invalid temperature units. Supported: celsius, fahrenheit, kelvin"), nil
			}
			result = converted

		default:
			log.Warnw("Tool: convert_units invalid category", "category", category)
			return shared.Errorf("Invalid category '%s'. Use: length, weight, temperature", category), nil
		}

		rounded := decimal.NewFromFloat(result).Round(4).InexactFloat64()

		return shared.Success(shared.Result{
			"value":     value,
			"from_unit": fromUnit,
			"to_unit":   toUnit,
			"category":  category,
			"result":    rounded,
			"formatted": fmt.Sprintf("%s %s = %s %s",
				shared.FormatNumber(value), fromUnit, shared.FormatNumber(rounded), toUnit),
		}), nil
	}

	return tool.NewBuilder(
		"convert_units",
		"Convert between common units of measurement",
		fn,
	).WithMetrics().Build()
}

// convertByFactor routes a conversion through the category's base unit.
func convertByFactor(value float64, fromUnit, toUnit string, table map[string]float64) (float64, bool) {
	fromFactor, okFrom := table[fromUnit]
	toFactor, okTo := table[toUnit]
	if !okFrom || !okTo {
		return 0, false
	}
	return value * fromFactor / toFactor, true
}

// convertTemperature applies one of the six directed formulas, or identity
// when source and target match.
func convertTemperature(value float64, fromUnit, toUnit string) (float64, bool) {
	switch {
	case fromUnit == "celsius" && toUnit == "fahrenheit":
		return value*9/5 + 32, true
	case fromUnit == "fahrenheit" && toUnit == "celsius":
		return (value - 32) * 5 / 9, true
	case fromUnit == "celsius" && toUnit == "kelvin":
		return value + 273.15, true
	case fromUnit == "kelvin" && toUnit == "celsius":
		return value - 273.15, true
	case fromUnit == "fahrenheit" && toUnit == "kelvin":
		return (value-32)*5/9 + 273.15, true
	case fromUnit == "kelvin" && toUnit == "fahrenheit":
		return (value-273.15)*9/5 + 32, true
	case fromUnit == toUnit:
		return value, true
	}
	return 0, false
}
