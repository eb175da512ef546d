// Package custom maintains the user-authored server listings, durably backed
// by the generic collection store. Custom listings are full catalog records
// with source fixed to "custom".
package custom

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/mcp-hub/mcphub/internal/catalog"
	errs "github.com/mcp-hub/mcphub/internal/errors"
	"github.com/mcp-hub/mcphub/internal/store"
)

// collectionName is the well-known storage key for custom servers.
const collectionName = "custom-servers"

// Input carries the user supplied fields for a new custom server.
type Input struct {
	Name          string
	Description   string
	Type          catalog.ServerType
	Command       string
	Args          []string
	URL           string
	Category      string
	Tags          []string
	Repository    string
	Documentation string
}

// Patch carries a partial update. Nil pointer fields are left unchanged;
// slice fields are replaced only when non-nil.
type Patch struct {
	Name          *string
	Description   *string
	Type          *catalog.ServerType
	Command       *string
	Args          []string
	URL           *string
	Category      *string
	Tags          []string
	Repository    *string
	Documentation *string
}

// Collection is the ordered set of user-authored servers.
type Collection struct {
	store *store.Store[[]catalog.Server]
	now   func() time.Time
	newID func() string
}

// New opens the custom-servers collection.
func New(logger hclog.Logger, opt ...store.Option) (*Collection, error) {
	st, err := store.New(logger, collectionName, func() []catalog.Server { return []catalog.Server{} }, opt...)
	if err != nil {
		return nil, err
	}

	return &Collection{
		store: st,
		now:   time.Now,
		newID: newID,
	}, nil
}

// Add creates a custom server from the input, appends it to the collection
// and returns the created record. The id and slug are generated, install
// commands are derived from the command when present, and the Claude config
// is derived from the transport type.
func (c *Collection) Add(in Input) catalog.Server {
	now := c.now().UTC()

	s := catalog.Server{
		ID:            c.newID(),
		Slug:          Slugify(in.Name),
		Name:          in.Name,
		Description:   in.Description,
		Type:          in.Type,
		Command:       in.Command,
		Args:          in.Args,
		URL:           in.URL,
		Category:      in.Category,
		Tags:          in.Tags,
		Source:        catalog.SourceCustom,
		Verified:      false,
		Repository:    in.Repository,
		Documentation: in.Documentation,
		Install:       deriveInstall(in.Command),
		ClaudeConfig:  deriveClaudeConfig(in.Type, in.Command, in.Args, in.URL),
		CreatedAt:     &now,
		UpdatedAt:     &now,
	}

	c.store.Update(func(servers []catalog.Server) []catalog.Server {
		return append(servers, s)
	})

	return s
}

// Update merges the patch into the record with the given id, refreshing
// updatedAt. A changed name regenerates the slug; a changed command, url or
// args regenerates the Claude config. Unknown ids are a no-op; the return
// value reports whether a record was updated.
func (c *Collection) Update(id string, p Patch) bool {
	updated := false

	c.store.Update(func(servers []catalog.Server) []catalog.Server {
		out := make([]catalog.Server, len(servers))
		for i, s := range servers {
			if s.ID != id {
				out[i] = s
				continue
			}

			invocationChanged := false

			if p.Name != nil {
				s.Name = *p.Name
				s.Slug = Slugify(*p.Name)
			}
			if p.Description != nil {
				s.Description = *p.Description
			}
			if p.Type != nil {
				s.Type = *p.Type
			}
			if p.Command != nil {
				s.Command = *p.Command
				invocationChanged = true
			}
			if p.Args != nil {
				s.Args = p.Args
				invocationChanged = true
			}
			if p.URL != nil {
				s.URL = *p.URL
				invocationChanged = true
			}
			if p.Category != nil {
				s.Category = *p.Category
			}
			if p.Tags != nil {
				s.Tags = p.Tags
			}
			if p.Repository != nil {
				s.Repository = *p.Repository
			}
			if p.Documentation != nil {
				s.Documentation = *p.Documentation
			}

			if invocationChanged {
				s.ClaudeConfig = deriveClaudeConfig(s.Type, s.Command, s.Args, s.URL)
			}

			now := c.now().UTC()
			s.UpdatedAt = &now
			updated = true
			out[i] = s
		}
		return out
	})

	return updated
}

// Delete removes the record with the given id. Absent ids are a no-op; the
// return value reports whether a record was removed.
func (c *Collection) Delete(id string) bool {
	deleted := false

	c.store.Update(func(servers []catalog.Server) []catalog.Server {
		out := make([]catalog.Server, 0, len(servers))
		for _, s := range servers {
			if s.ID == id {
				deleted = true
				continue
			}
			out = append(out, s)
		}
		return out
	})

	return deleted
}

// ByID returns the custom server with the given id.
func (c *Collection) ByID(id string) (catalog.Server, bool) {
	for _, s := range c.store.Value() {
		if s.ID == id {
			return s, true
		}
	}
	return catalog.Server{}, false
}

// BySlug returns the custom server with the given slug.
func (c *Collection) BySlug(slug string) (catalog.Server, bool) {
	for _, s := range c.store.Value() {
		if s.Slug == slug {
			return s, true
		}
	}
	return catalog.Server{}, false
}

// All returns the collection in insertion order.
func (c *Collection) All() []catalog.Server {
	return c.store.Value()
}

// Count returns the number of custom servers.
func (c *Collection) Count() int {
	return len(c.store.Value())
}

// Clear empties the collection and removes its backing file.
func (c *Collection) Clear() {
	c.store.Remove()
}

// Export serializes the full collection as a pretty-printed JSON array.
func (c *Collection) Export() ([]byte, error) {
	return json.MarshalIndent(c.store.Value(), "", "  ")
}

// Import parses data as a JSON array of server records and adds them to the
// collection, replacing it entirely when replace is true. Validation is
// all-or-nothing: every record must carry at minimum a name, type and
// category, and nothing is imported when any record fails. Imported records
// get fresh ids and slugs so they never collide with existing entries, their
// source is forced to custom, createdAt is preserved when present, and
// updatedAt is stamped to the import time. Returns the number of records
// imported.
func (c *Collection) Import(data []byte, replace bool) (int, error) {
	var imported []catalog.Server
	if err := json.Unmarshal(data, &imported); err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrImportInvalid, describeParseError(err))
	}

	for i, s := range imported {
		if s.Name == "" || s.Type == "" || s.Category == "" {
			return 0, fmt.Errorf(
				"%w: record %d is missing required fields (name, type, category)",
				errs.ErrImportInvalid, i,
			)
		}
	}

	now := c.now().UTC()
	for i := range imported {
		imported[i].ID = c.newID()
		imported[i].Slug = Slugify(imported[i].Name)
		imported[i].Source = catalog.SourceCustom
		if imported[i].CreatedAt == nil {
			imported[i].CreatedAt = &now
		}
		imported[i].UpdatedAt = &now
	}

	c.store.Update(func(servers []catalog.Server) []catalog.Server {
		if replace {
			return imported
		}
		return append(servers, imported...)
	})

	return len(imported), nil
}

// describeParseError rewords the two common decode failures so the message
// names what the document should have been.
func describeParseError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("expected a JSON array of server records: %w", err)
	}
	return fmt.Errorf("not valid JSON: %w", err)
}

// deriveInstall builds default install commands from a subprocess command,
// matching the catalog convention of "N/A" for inapplicable managers.
func deriveInstall(command string) catalog.InstallCommands {
	if command == "" {
		return catalog.InstallCommands{NPM: "N/A", NPX: "N/A"}
	}
	return catalog.InstallCommands{
		NPM: fmt.Sprintf("npm install -g %s", command),
		NPX: fmt.Sprintf("npx %s", command),
	}
}

// deriveClaudeConfig builds the Claude config fragment for a listing from its
// transport type and invocation fields.
func deriveClaudeConfig(t catalog.ServerType, command string, args []string, url string) map[string]any {
	switch {
	case t == catalog.TypeStdio && command != "":
		if args == nil {
			args = []string{}
		}
		return map[string]any{"command": command, "args": args}
	case (t == catalog.TypeHTTP || t == catalog.TypeSSE) && url != "":
		return map[string]any{"url": url}
	default:
		return map[string]any{}
	}
}
