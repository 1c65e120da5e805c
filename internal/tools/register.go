package tools

import (
	"github.com/habeeblht17/mcp-tools-server/internal/tools/calculator"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/currency"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/timezone"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/units"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/weather"
)

// RegisterAllTools registers all available tools in the registry
func RegisterAllTools(registry *Registry, deps shared.Deps) {
	log := deps.Logger().With("component", "tool_registration")

	registry.Register("get_weather", weather.New(deps))
	registry.Register("calculate", calculator.New(deps))
	registry.Register("convert_currency", currency.New(deps))
	registry.Register("get_timezone_info", timezone.New(deps))
	registry.Register("convert_units", units.New(deps))

	log.Debugw("Registered tools", "tools", registry.List())
}
