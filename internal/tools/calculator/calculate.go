package calculator

import (
	"context"
	"fmt"
	"strings"

	"github.com/habeeblht17/mcp-tools-server/internal/tool"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
)

var operations = map[string]func(a, b float64) float64{
	"add":      func(a, b float64) float64 { return a + b },
	"subtract": func(a, b float64) float64 { return a - b },
	"multiply": func(a, b float64) float64 { return a * b },
	"divide":   func(a, b float64) float64 { return a / b },
}

// New returns a tool that performs basic arithmetic. Pure function, no I/O;
// the only failure modes are an unknown operation and division by zero.
func New(deps shared.Deps) tool.Tool {
	log := deps.Logger()

	fn := func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		operation, _ := args["operation"].(string)
		num1, _ := args["num1"].(float64)
		num2, _ := args["num2"].(float64)

		operation = strings.ToLower(operation)

		op, ok := operations[operation]
		if !ok {
			log.Warnw("Tool: calculate invalid operation", "operation", operation)
			return shared.Errorf("Invalid operation '%s'. Use: add, subtract, multiply, divide", operation), nil
		}

		if operation == "divide" && num2 == 0 {
			log.Warn("Tool: calculate division by zero")
			return shared.Error("Cannot divide by zero"), nil
		}

		result := op(num1, num2)

		return shared.Success(shared.Result{
			"operation":  operation,
			"num1":       num1,
			"num2":       num2,
			"result":     result,
			"expression": fmt.Sprintf("%s %s %s = %s", shared.FormatNumber(num1), operation, shared.FormatNumber(num2), shared.FormatNumber(result)),
		}), nil
	}

	return tool.NewBuilder(
		"calculate",
		"Perform basic arithmetic operations",
		fn,
	).WithMetrics().Build()
}
