// Package perms provides centralized file and directory permission constants
// for consistent handling across the mcphub codebase.
package perms

import "os"

const (
	// RegularFile permissions for standard files (configuration, collection data, exports).
	// Mode 0644: owner read/write, group read, others read.
	RegularFile os.FileMode = 0o644

	// RegularDir permissions for standard directories (data, config).
	// Mode 0755: owner read/write/execute, group read/execute, others read/execute.
	RegularDir os.FileMode = 0o755
)
