// Package catalog holds the immutable in-memory catalog of MCP server
// listings and categories, the startup loader that validates the bundled
// datasets, and the pure query functions that filter, sort and aggregate them.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"

	errs "github.com/mcp-hub/mcphub/internal/errors"
)

//go:embed data/servers.json
var embeddedServers []byte

//go:embed data/categories.json
var embeddedCategories []byte

// Catalog is the loaded, process-lifetime set of server and category records.
// Records are never mutated after Load returns.
type Catalog struct {
	servers    []Server
	categories []Category
	logger     hclog.Logger
}

// Option configures catalog loading.
type Option func(*options) error

type options struct {
	serversData    []byte
	categoriesData []byte
}

// WithServersData replaces the bundled servers dataset.
func WithServersData(data []byte) Option {
	return func(o *options) error {
		if len(data) == 0 {
			return fmt.Errorf("servers data cannot be empty")
		}
		o.serversData = data
		return nil
	}
}

// WithCategoriesData replaces the bundled categories dataset.
func WithCategoriesData(data []byte) Option {
	return func(o *options) error {
		if len(data) == 0 {
			return fmt.Errorf("categories data cannot be empty")
		}
		o.categoriesData = data
		return nil
	}
}

// Load parses and validates the catalog datasets, returning an immutable
// Catalog. Any record violating the document schema or the structural
// invariants (unique ids and slugs, resolvable category references) is
// rejected with a descriptive error rather than silently admitted.
func Load(logger hclog.Logger, opt ...Option) (*Catalog, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("catalog")

	opts := options{
		serversData:    embeddedServers,
		categoriesData: embeddedCategories,
	}
	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return nil, err
		}
	}

	if err := validateDocument(serversSchema, opts.serversData, "servers"); err != nil {
		return nil, err
	}
	if err := validateDocument(categoriesSchema, opts.categoriesData, "categories"); err != nil {
		return nil, err
	}

	var servers []Server
	if err := json.Unmarshal(opts.serversData, &servers); err != nil {
		return nil, fmt.Errorf("%w: failed to decode servers dataset: %w", errs.ErrCatalogInvalid, err)
	}

	var categories []Category
	if err := json.Unmarshal(opts.categoriesData, &categories); err != nil {
		return nil, fmt.Errorf("%w: failed to decode categories dataset: %w", errs.ErrCatalogInvalid, err)
	}

	c := &Catalog{
		servers:    servers,
		categories: categories,
		logger:     logger,
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// validate enforces the structural invariants the document schema cannot
// express: uniqueness of ids and slugs and category foreign keys resolving.
// Transport/invocation consistency (stdio carrying a command, http/sse
// carrying a url) is checked leniently: mismatches are admitted with a
// warning so that a sloppy listing degrades to best-effort display.
func (c *Catalog) validate() error {
	categoryIDs := make(map[string]struct{}, len(c.categories))
	for _, cat := range c.categories {
		if _, dup := categoryIDs[cat.ID]; dup {
			return fmt.Errorf("%w: duplicate category id '%s'", errs.ErrCatalogInvalid, cat.ID)
		}
		categoryIDs[cat.ID] = struct{}{}
	}

	ids := make(map[string]struct{}, len(c.servers))
	slugs := make(map[string]struct{}, len(c.servers))
	for _, s := range c.servers {
		if _, dup := ids[s.ID]; dup {
			return fmt.Errorf("%w: duplicate server id '%s'", errs.ErrCatalogInvalid, s.ID)
		}
		ids[s.ID] = struct{}{}

		if _, dup := slugs[s.Slug]; dup {
			return fmt.Errorf("%w: duplicate server slug '%s'", errs.ErrCatalogInvalid, s.Slug)
		}
		slugs[s.Slug] = struct{}{}

		if _, ok := categoryIDs[s.Category]; !ok {
			return fmt.Errorf(
				"%w: server '%s' references unknown category '%s'",
				errs.ErrCatalogInvalid, s.ID, s.Category,
			)
		}

		switch s.Type {
		case TypeStdio:
			if s.Command == "" {
				c.logger.Warn("stdio server listed without a command", "server", s.ID)
			}
		case TypeHTTP, TypeSSE:
			if s.URL == "" {
				c.logger.Warn("endpoint server listed without a url", "server", s.ID, "type", s.Type)
			}
		}
	}

	return nil
}

// Servers returns a copy of the full server list in dataset order.
func (c *Catalog) Servers() []Server {
	return slices.Clone(c.servers)
}

// Categories returns a copy of the category list in dataset order.
// ServerCount is not populated; see CategoriesWithCounts.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// ServerByID returns the server with the given id, reporting presence
// explicitly rather than via an error.
func (c *Catalog) ServerByID(id string) (Server, bool) {
	for _, s := range c.servers {
		if s.ID == id {
			return s, true
		}
	}
	return Server{}, false
}

// ServerBySlug returns the server with the given slug.
func (c *Catalog) ServerBySlug(slug string) (Server, bool) {
	for _, s := range c.servers {
		if s.Slug == slug {
			return s, true
		}
	}
	return Server{}, false
}

// ServersByCategory returns every server in the given category, in dataset order.
func (c *Catalog) ServersByCategory(categoryID string) []Server {
	out := make([]Server, 0)
	for _, s := range c.servers {
		if s.Category == categoryID {
			out = append(out, s)
		}
	}
	return out
}

// CategoryByID returns the category with the given id.
func (c *Catalog) CategoryByID(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Featured returns every server flagged as featured.
func (c *Catalog) Featured() []Server {
	out := make([]Server, 0)
	for _, s := range c.servers {
		if s.Featured {
			out = append(out, s)
		}
	}
	return out
}

// BySource returns every server with the given listing source.
func (c *Catalog) BySource(src Source) []Server {
	out := make([]Server, 0)
	for _, s := range c.servers {
		if s.Source == src {
			out = append(out, s)
		}
	}
	return out
}

// Verified returns every verified server.
func (c *Catalog) Verified() []Server {
	out := make([]Server, 0)
	for _, s := range c.servers {
		if s.Verified {
			out = append(out, s)
		}
	}
	return out
}

// Tags returns the sorted, deduplicated union of all server tags.
func (c *Catalog) Tags() []string {
	return AllTags(c.servers)
}

// CategoriesWithCounts returns the categories with ServerCount populated.
func (c *Catalog) CategoriesWithCounts() []Category {
	return WithCounts(c.categories, c.servers)
}

// Filter returns the servers satisfying every active predicate in spec,
// preserving dataset order.
func (c *Catalog) Filter(spec FilterSpec) []Server {
	return Filter(c.servers, spec)
}
