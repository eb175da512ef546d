package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/mcp-hub/mcphub/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".mcphub.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefaultLoader_Load(t *testing.T) {
	t.Parallel()

	loader := &DefaultLoader{}

	t.Run("missing file yields zero config", func(t *testing.T) {
		t.Parallel()

		cfg, err := loader.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		require.Equal(t, &Config{}, cfg)
		require.Empty(t, cfg.Path())
	})

	t.Run("empty path is an error", func(t *testing.T) {
		t.Parallel()

		_, err := loader.Load("   ")
		require.ErrorIs(t, err, errs.ErrConfigLoadFailed)
	})

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		dataDir := t.TempDir()
		path := writeConfig(t, `
data_dir = "`+dataDir+`"
default_sort = "stars"
`)

		cfg, err := loader.Load(path)
		require.NoError(t, err)
		require.Equal(t, dataDir, cfg.DataDir)
		require.Equal(t, "stars", cfg.DefaultSort)
		require.Equal(t, path, cfg.Path())
	})

	t.Run("malformed toml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `default_sort = [broken`)

		_, err := loader.Load(path)
		require.ErrorIs(t, err, errs.ErrConfigLoadFailed)
	})

	t.Run("invalid default sort", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `default_sort = "popularity"`)

		_, err := loader.Load(path)
		require.ErrorIs(t, err, errs.ErrConfigLoadFailed)
		require.ErrorContains(t, err, "default_sort")
	})

	t.Run("missing dataset override", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `servers_file = "/nonexistent/servers.json"`)

		_, err := loader.Load(path)
		require.ErrorIs(t, err, errs.ErrConfigLoadFailed)
		require.ErrorContains(t, err, "servers_file")
	})

	t.Run("dataset override must exist", func(t *testing.T) {
		t.Parallel()

		servers := filepath.Join(t.TempDir(), "servers.json")
		require.NoError(t, os.WriteFile(servers, []byte("[]"), 0o644))

		path := writeConfig(t, `servers_file = "`+servers+`"`)

		cfg, err := loader.Load(path)
		require.NoError(t, err)
		require.Equal(t, servers, cfg.ServersFile)
	})
}
