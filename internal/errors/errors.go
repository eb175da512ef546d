// Package errors defines domain-level errors used throughout the application.
// These errors represent business logic failures and are translated into user
// facing messages (and exit codes) at the CLI boundary.
package errors

import (
	"errors"
)

var (
	// ErrServerNotFound indicates that no catalog or custom server matches the
	// requested id or slug. Lookups inside the core return an explicit absent
	// value; this error only exists for the CLI boundary.
	ErrServerNotFound = errors.New("server not found")

	// ErrConfigLoadFailed indicates that the application config file exists but
	// could not be parsed or failed validation.
	ErrConfigLoadFailed = errors.New("config load failed")

	// ErrCatalogInvalid indicates that a bundled or user supplied catalog
	// dataset failed startup validation.
	ErrCatalogInvalid = errors.New("catalog dataset invalid")

	// ErrImportInvalid indicates that an import document failed validation.
	// No records are imported when this is returned.
	ErrImportInvalid = errors.New("import document invalid")
)
