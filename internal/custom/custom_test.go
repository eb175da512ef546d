package custom

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/mcp-hub/mcphub/internal/catalog"
	errs "github.com/mcp-hub/mcphub/internal/errors"
	"github.com/mcp-hub/mcphub/internal/store"
)

func newTestCollection(t *testing.T) *Collection {
	t.Helper()

	c, err := New(hclog.NewNullLogger(), store.WithDirectory(t.TempDir()))
	require.NoError(t, err)

	return c
}

func stdioInput() Input {
	return Input{
		Name:        "My Local Server",
		Description: "Runs locally",
		Type:        catalog.TypeStdio,
		Command:     "my-server",
		Args:        []string{"--verbose"},
		Category:    "utilities",
		Tags:        []string{"local"},
	}
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)

	got := c.Add(stdioInput())

	require.NotEmpty(t, got.ID)
	require.Equal(t, "my-local-server", got.Slug)
	require.Equal(t, catalog.SourceCustom, got.Source)
	require.False(t, got.Verified)
	require.Equal(t, "npm install -g my-server", got.Install.NPM)
	require.Equal(t, "npx my-server", got.Install.NPX)
	require.Equal(t, map[string]any{"command": "my-server", "args": []string{"--verbose"}}, got.ClaudeConfig)
	require.NotNil(t, got.CreatedAt)
	require.NotNil(t, got.UpdatedAt)

	stored, ok := c.ByID(got.ID)
	require.True(t, ok)
	require.Equal(t, got.Name, stored.Name)
}

func TestCollection_AddGeneratesUniqueIDs(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)

	first := c.Add(stdioInput())
	second := c.Add(stdioInput())

	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 2, c.Count())
}

func TestCollection_AddRemoteServer(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)

	got := c.Add(Input{
		Name:     "Remote API",
		Type:     catalog.TypeHTTP,
		URL:      "https://mcp.example.com",
		Category: "developer-tools",
	})

	require.Equal(t, map[string]any{"url": "https://mcp.example.com"}, got.ClaudeConfig)
	require.Equal(t, "N/A", got.Install.NPM)
}

func TestCollection_Update(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)
	created := c.Add(stdioInput())

	name := "Renamed Server"
	desc := "New description"
	require.True(t, c.Update(created.ID, Patch{Name: &name, Description: &desc}))

	got, ok := c.ByID(created.ID)
	require.True(t, ok)
	require.Equal(t, "Renamed Server", got.Name)
	require.Equal(t, "renamed-server", got.Slug)
	require.Equal(t, "New description", got.Description)

	// Name changes alone keep the invocation config intact.
	require.Equal(t, created.ClaudeConfig, got.ClaudeConfig)
}

func TestCollection_UpdateRegeneratesClaudeConfig(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)
	created := c.Add(stdioInput())

	command := "other-server"
	require.True(t, c.Update(created.ID, Patch{Command: &command, Args: []string{}}))

	got, _ := c.ByID(created.ID)
	require.Equal(t, map[string]any{"command": "other-server", "args": []string{}}, got.ClaudeConfig)
}

func TestCollection_UpdateUnknownID(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)

	name := "x"
	require.False(t, c.Update("missing", Patch{Name: &name}))
}

func TestCollection_Delete(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)
	created := c.Add(stdioInput())

	require.True(t, c.Delete(created.ID))
	require.Zero(t, c.Count())

	require.False(t, c.Delete(created.ID))
}

func TestCollection_BySlug(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)
	created := c.Add(stdioInput())

	got, ok := c.BySlug("my-local-server")
	require.True(t, ok)
	require.Equal(t, created.ID, got.ID)

	_, ok = c.BySlug("unknown")
	require.False(t, ok)
}

func TestCollection_ExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)
	c.Add(stdioInput())

	data, err := c.Export()
	require.NoError(t, err)

	c2 := newTestCollection(t)
	n, err := c2.Import(data, false)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 1, c2.Count())

	got := c2.All()[0]
	require.Equal(t, "My Local Server", got.Name)
	require.Equal(t, catalog.SourceCustom, got.Source)
}

func TestCollection_ImportAppendsAndReplaces(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal([]catalog.Server{
		{Name: "Imported", Type: catalog.TypeStdio, Category: "utilities"},
	})
	require.NoError(t, err)

	t.Run("append", func(t *testing.T) {
		t.Parallel()

		c := newTestCollection(t)
		c.Add(stdioInput())

		n, err := c.Import(payload, false)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 2, c.Count())
	})

	t.Run("replace", func(t *testing.T) {
		t.Parallel()

		c := newTestCollection(t)
		c.Add(stdioInput())

		n, err := c.Import(payload, true)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 1, c.Count())
		require.Equal(t, "Imported", c.All()[0].Name)
	})
}

func TestCollection_ImportRegeneratesIdentity(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	payload, err := json.Marshal([]catalog.Server{
		{
			ID:        "stolen-id",
			Slug:      "stolen-slug",
			Name:      "Imported Server",
			Type:      catalog.TypeStdio,
			Category:  "utilities",
			Source:    catalog.SourceOfficial,
			CreatedAt: &created,
		},
	})
	require.NoError(t, err)

	c := newTestCollection(t)
	_, err = c.Import(payload, false)
	require.NoError(t, err)

	got := c.All()[0]
	require.NotEqual(t, "stolen-id", got.ID)
	require.Equal(t, "imported-server", got.Slug)
	require.Equal(t, catalog.SourceCustom, got.Source)
	require.Equal(t, created, got.CreatedAt.UTC())
	require.NotNil(t, got.UpdatedAt)
	require.True(t, got.UpdatedAt.After(created))
}

func TestCollection_ImportRejectsInvalidPayloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "not json",
			payload: "{broken",
			wantMsg: "not valid JSON",
		},
		{
			name:    "not an array",
			payload: `{"name": "solo"}`,
			wantMsg: "expected a JSON array",
		},
		{
			name:    "missing required fields",
			payload: `[{"name": "ok", "type": "stdio", "category": "utilities"}, {"name": "incomplete"}]`,
			wantMsg: "record 1 is missing required fields",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newTestCollection(t)
			c.Add(stdioInput())

			n, err := c.Import([]byte(tc.payload), false)
			require.ErrorIs(t, err, errs.ErrImportInvalid)
			require.ErrorContains(t, err, tc.wantMsg)
			require.Zero(t, n)

			// Nothing is imported when any record fails.
			require.Equal(t, 1, c.Count())
		})
	}
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)
	c.Add(stdioInput())

	c.Clear()

	require.Zero(t, c.Count())
}
