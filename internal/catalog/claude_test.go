package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateClaudeConfig(t *testing.T) {
	t.Parallel()

	s := Server{
		ID: "filesystem",
		ClaudeConfig: map[string]any{
			"command": "npx",
			"args":    []any{"-y", "@modelcontextprotocol/server-filesystem"},
		},
	}

	data, err := GenerateClaudeConfig(s)
	require.NoError(t, err)

	var envelope ClaudeConfigEnvelope
	require.NoError(t, json.Unmarshal(data, &envelope))

	require.Contains(t, envelope.MCPServers, "filesystem")

	cfg, ok := envelope.MCPServers["filesystem"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "npx", cfg["command"])
	require.Equal(t, []any{"-y", "@modelcontextprotocol/server-filesystem"}, cfg["args"])

	// Two-space indentation for parity with Claude Desktop's config file.
	require.True(t, strings.HasPrefix(string(data), "{\n  \"mcpServers\""))
}

func TestGenerateClaudeConfig_NilConfig(t *testing.T) {
	t.Parallel()

	data, err := GenerateClaudeConfig(Server{ID: "bare"})
	require.NoError(t, err)

	var envelope ClaudeConfigEnvelope
	require.NoError(t, json.Unmarshal(data, &envelope))

	require.Equal(t, map[string]any{}, envelope.MCPServers["bare"])
}
