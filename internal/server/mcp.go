package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/habeeblht17/mcp-tools-server/internal/tool"
	"github.com/habeeblht17/mcp-tools-server/internal/tools"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
	"github.com/habeeblht17/mcp-tools-server/pkg/logger"
)

// Server exposes registered tools over the Model Context Protocol.
type Server struct {
	mcp *mcpserver.MCPServer
	log *logger.Logger
}

// New declares the tool schemas and binds each to its registry handler.
func New(name, version string, registry *tools.Registry, log *logger.Logger) *Server {
	s := mcpserver.NewMCPServer(name, version,
		mcpserver.WithToolCapabilities(true),
	)

	for _, schema := range toolSchemas() {
		t, ok := registry.Get(schema.Name)
		if !ok {
			log.Warnw("Tool declared but not registered", "tool", schema.Name)
			continue
		}
		s.AddTool(schema, adapt(t))
	}

	return &Server{mcp: s, log: log}
}

// Serve blocks serving MCP over stdio until the client disconnects.
func (s *Server) Serve() error {
	return mcpserver.ServeStdio(s.mcp)
}

// adapt bridges a registry tool to an MCP handler. The envelope travels as
// JSON text content; a non-nil handler error is converted to an error
// envelope here so nothing surfaces as a protocol-level failure.
func adapt(t tool.Tool) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := t.Execute(ctx, req.GetArguments())
		if err != nil {
			result = shared.Errorf("Unexpected error: %v", err)
		}

		payload, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}

func toolSchemas() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("get_weather",
			mcp.WithDescription("Retrieve current weather conditions for any city or location."),
			mcp.WithString("location",
				mcp.Required(),
				mcp.Description("City name, ZIP code, or \"City,Country\" format (e.g. \"London,UK\")"),
			),
		),
		mcp.NewTool("calculate",
			mcp.WithDescription("Perform basic arithmetic operations."),
			mcp.WithString("operation",
				mcp.Required(),
				mcp.Description("Arithmetic operation to perform"),
				mcp.Enum("add", "subtract", "multiply", "divide"),
			),
			mcp.WithNumber("num1",
				mcp.Required(),
				mcp.Description("First number"),
			),
			mcp.WithNumber("num2",
				mcp.Required(),
				mcp.Description("Second number"),
			),
		),
		mcp.NewTool("convert_currency",
			mcp.WithDescription("Convert amount between different currencies using live exchange rates."),
			mcp.WithNumber("amount",
				mcp.Required(),
				mcp.Description("Amount to convert"),
			),
			mcp.WithString("from_currency",
				mcp.Required(),
				mcp.Description("Source currency code (e.g. \"USD\", \"EUR\", \"GBP\")"),
			),
			mcp.WithString("to_currency",
				mcp.Required(),
				mcp.Description("Target currency code"),
			),
		),
		mcp.NewTool("get_timezone_info",
			mcp.WithDescription("Get current time and timezone information for a given city."),
			mcp.WithString("city",
				mcp.Required(),
				mcp.Description("City name (e.g. \"London\", \"New York\", \"Tokyo\")"),
			),
		),
		mcp.NewTool("convert_units",
			mcp.WithDescription("Convert between common units of measurement."),
			mcp.WithNumber("value",
				mcp.Required(),
				mcp.Description("Numeric value to convert"),
			),
			mcp.WithString("from_unit",
				mcp.Required(),
				mcp.Description("Source unit"),
			),
			mcp.WithString("to_unit",
				mcp.Required(),
				mcp.Description("Target unit"),
			),
			mcp.WithString("category",
				mcp.Required(),
				mcp.Description("Unit category"),
				mcp.Enum("length", "weight", "temperature"),
			),
		),
	}
}
