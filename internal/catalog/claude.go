package catalog

import (
	"encoding/json"
)

// ClaudeConfigEnvelope is the document shape Claude Desktop expects: server
// configurations keyed by server id under a single mcpServers object.
type ClaudeConfigEnvelope struct {
	MCPServers map[string]any `json:"mcpServers"`
}

// GenerateClaudeConfig builds the install configuration snippet for a single
// server, pretty-printed with two-space indentation for display parity with
// Claude Desktop's own config file.
func GenerateClaudeConfig(s Server) ([]byte, error) {
	cfg := s.ClaudeConfig
	if cfg == nil {
		cfg = map[string]any{}
	}

	envelope := ClaudeConfigEnvelope{
		MCPServers: map[string]any{s.ID: cfg},
	}

	return json.MarshalIndent(envelope, "", "  ")
}
