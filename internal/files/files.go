// Package files provides filesystem helpers for user-specific application
// directories following the XDG Base Directory Specification.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcp-hub/mcphub/internal/perms"
)

const (
	// EnvVarXDGConfigHome is the XDG Base Directory env var name for config files.
	EnvVarXDGConfigHome = "XDG_CONFIG_HOME"

	// EnvVarXDGDataHome is the XDG Base Directory env var name for user data files.
	EnvVarXDGDataHome = "XDG_DATA_HOME"
)

// AppDirName returns the name of the application directory for use in user-specific operations where data is being written.
func AppDirName() string {
	return "mcphub"
}

// UserSpecificDataDir returns the directory that should be used to store user-specific application data,
// such as the saved and custom server collections.
// It adheres to the XDG Base Directory Specification, respecting the XDG_DATA_HOME environment variable.
// When XDG_DATA_HOME is not set, it defaults to ~/.local/share/mcphub
// See: https://specifications.freedesktop.org/basedir-spec/latest/
func UserSpecificDataDir() (string, error) {
	return userSpecificDir(EnvVarXDGDataHome, filepath.Join(".local", "share"))
}

// UserSpecificConfigDir returns the directory that should be used to store any user-specific configuration.
// It adheres to the XDG Base Directory Specification, respecting the XDG_CONFIG_HOME environment variable.
// When XDG_CONFIG_HOME is not set, it defaults to ~/.config/mcphub
func UserSpecificConfigDir() (string, error) {
	return userSpecificDir(EnvVarXDGConfigHome, ".config")
}

// EnsureAtLeastRegularDir creates a directory with standard permissions if it doesn't exist,
// and verifies that it has at least the required regular permissions if it already exists.
// It does not attempt to repair ownership or permissions: if they are wrong, it returns an error.
func EnsureAtLeastRegularDir(path string) error {
	return ensureAtLeastDir(path, perms.RegularDir)
}

// ensureAtLeastDir creates a directory with the specified permissions if it doesn't exist,
// and verifies the result is a real directory. Rejects symlinked directories.
//
// NOTE: Only the final directory is created with the specified permissions,
// antecedent directories may end up with default permissions (typically 0755).
func ensureAtLeastDir(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("could not ensure directory exists for '%s': %w", path, err)
	}

	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("could not stat directory '%s': %w", path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("path '%s' is a symlink, not a directory", path)
	}

	if !info.IsDir() {
		return fmt.Errorf("path '%s' exists but is not a directory", path)
	}

	if info.Mode().Perm()&perm != perm {
		return fmt.Errorf(
			"directory '%s' has permissions %o, requires at least %o",
			path, info.Mode().Perm(), perm,
		)
	}

	return nil
}

// userSpecificDir resolves an application directory from an XDG environment
// variable, falling back to the given home-relative default when unset.
func userSpecificDir(envVar string, fallback string) (string, error) {
	envVar = strings.TrimSpace(envVar)
	// Validate that the environment variable follows XDG naming convention.
	if !strings.HasPrefix(envVar, "XDG_") {
		return "", fmt.Errorf(
			"environment variable '%s' does not follow XDG Base Directory Specification",
			envVar,
		)
	}

	// If the relevant environment variable is present and configured, then use it.
	if base, ok := os.LookupEnv(envVar); ok && strings.TrimSpace(base) != "" {
		base = strings.TrimSpace(base)
		if filepath.IsAbs(base) {
			return filepath.Join(base, AppDirName()), nil
		}

		return "", fmt.Errorf("environment variable '%s' must be an absolute path, got: %s", envVar, base)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user home directory: %w", err)
	}

	return filepath.Join(home, fallback, AppDirName()), nil
}
