package catalog

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	errs "github.com/mcp-hub/mcphub/internal/errors"
)

//go:embed data/servers.schema.json
var serversSchema []byte

//go:embed data/categories.schema.json
var categoriesSchema []byte

// validateDocument checks a dataset document against its JSON Schema and
// reports the first violation with enough context to locate the offending
// record.
func validateDocument(schema []byte, doc []byte, name string) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%w: failed to validate %s dataset: %w", errs.ErrCatalogInvalid, name, err)
	}

	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf(
			"%w: %s dataset: %s: %s",
			errs.ErrCatalogInvalid, name, first.Field(), first.Description(),
		)
	}

	return nil
}
