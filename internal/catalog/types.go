package catalog

import (
	"time"
)

// ServerType identifies the transport used to communicate with an MCP server.
type ServerType string

const (
	// TypeStdio identifies servers spawned as a subprocess and spoken to over stdin/stdout.
	TypeStdio ServerType = "stdio"

	// TypeHTTP identifies servers reached over streamable HTTP at a fixed endpoint.
	TypeHTTP ServerType = "http"

	// TypeSSE identifies servers reached over server-sent events at a fixed endpoint.
	TypeSSE ServerType = "sse"
)

// Valid reports whether t is one of the known server types.
func (t ServerType) Valid() bool {
	switch t {
	case TypeStdio, TypeHTTP, TypeSSE:
		return true
	default:
		return false
	}
}

// Source identifies where a server listing originates.
type Source string

const (
	SourceOfficial  Source = "official"
	SourceCommunity Source = "community"
	SourceCustom    Source = "custom"
)

// Valid reports whether s is one of the known listing sources.
func (s Source) Valid() bool {
	switch s {
	case SourceOfficial, SourceCommunity, SourceCustom:
		return true
	default:
		return false
	}
}

// EnvVar describes a single environment variable a server can be configured with.
type EnvVar struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
	Secret      bool   `json:"secret,omitempty"`
}

// Tool describes a tool exposed by a server.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Resource describes a resource exposed by a server.
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URI         string `json:"uri,omitempty"`
}

// InstallCommands holds the per-package-manager install command strings for a server.
type InstallCommands struct {
	NPM    string `json:"npm"`
	NPX    string `json:"npx"`
	Bunx   string `json:"bunx,omitempty"`
	Docker string `json:"docker,omitempty"`
}

// Stats holds popularity counters for a listing. All counters are optional
// and non-negative.
type Stats struct {
	Stars           int `json:"stars,omitempty"`
	Downloads       int `json:"downloads,omitempty"`
	WeeklyDownloads int `json:"weeklyDownloads,omitempty"`
}

// Server is a catalog entry describing an installable MCP server integration:
// its invocation method, metadata, and install instructions.
//
// The JSON field names mirror the interchange document schema, so exported and
// imported documents are interoperable with other catalog tooling.
type Server struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	LongDescription string            `json:"longDescription,omitempty"`
	Type            ServerType        `json:"type"`
	Command         string            `json:"command,omitempty"`
	Args            []string          `json:"args,omitempty"`
	URL             string            `json:"url,omitempty"`
	Env             map[string]EnvVar `json:"env,omitempty"`
	Tools           []Tool            `json:"tools,omitempty"`
	Resources       []Resource        `json:"resources,omitempty"`
	Category        string            `json:"category"`
	Tags            []string          `json:"tags"`
	Source          Source            `json:"source"`
	Verified        bool              `json:"verified"`
	Repository      string            `json:"repository,omitempty"`
	Documentation   string            `json:"documentation,omitempty"`
	Author          string            `json:"author,omitempty"`
	Version         string            `json:"version,omitempty"`
	Install         InstallCommands   `json:"install"`
	ClaudeConfig    map[string]any    `json:"claudeConfig"`
	Stats           *Stats            `json:"stats,omitempty"`
	Featured        bool              `json:"featured,omitempty"`
	CreatedAt       *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
}

// StarCount returns the star counter, treating missing stats as zero.
func (s Server) StarCount() int {
	if s.Stats == nil {
		return 0
	}
	return s.Stats.Stars
}

// DownloadCount returns the download counter, treating missing stats as zero.
func (s Server) DownloadCount() int {
	if s.Stats == nil {
		return 0
	}
	return s.Stats.Downloads
}

// Category is a grouping label for servers. ServerCount is derived on demand
// via WithCounts and never persisted.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	ServerCount int    `json:"serverCount,omitempty"`
}
