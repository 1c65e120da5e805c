package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habeeblht17/mcp-tools-server/internal/tool"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	t.Run("Register and Get", func(t *testing.T) {
		mockTool := &mockToolImpl{name: "test_tool"}

		registry.Register("test_tool", mockTool)

		retrieved, ok := registry.Get("test_tool")
		require.True(t, ok)
		assert.Equal(t, mockTool, retrieved)
	})

	t.Run("Get unknown tool", func(t *testing.T) {
		_, ok := registry.Get("unknown_tool")
		assert.False(t, ok)
	})

	t.Run("List is sorted", func(t *testing.T) {
		registry.Register("zeta", &mockToolImpl{name: "zeta"})
		registry.Register("alpha", &mockToolImpl{name: "alpha"})

		names := registry.List()
		assert.Equal(t, []string{"alpha", "test_tool", "zeta"}, names)
	})
}

func TestRegisterAllTools(t *testing.T) {
	registry := NewRegistry()
	RegisterAllTools(registry, shared.Deps{})

	assert.Equal(t, []string{
		"calculate",
		"convert_currency",
		"convert_units",
		"get_timezone_info",
		"get_weather",
	}, registry.List())

	for _, name := range registry.List() {
		registered, ok := registry.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, registered.Name())
		assert.NotEmpty(t, registered.Description())
	}
}

// mockToolImpl is a minimal implementation of tool.Tool for testing
type mockToolImpl struct {
	name string
}

func (m *mockToolImpl) Name() string        { return m.name }
func (m *mockToolImpl) Description() string { return "Test tool" }
func (m *mockToolImpl) Execute(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	return map[string]interface{}{"status": "success"}, nil
}

var _ tool.Tool = (*mockToolImpl)(nil)
