// Package saved maintains the user's bookmarked server references, durably
// backed by the generic collection store.
package saved

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/mcp-hub/mcphub/internal/catalog"
	"github.com/mcp-hub/mcphub/internal/store"
)

// collectionName is the well-known storage key for saved references.
const collectionName = "saved-servers"

// Ref is a bookmark pointing at a server by id. The referenced server is not
// required to still exist in the catalog.
type Ref struct {
	ServerID string    `json:"serverId"`
	SavedAt  time.Time `json:"savedAt"`
}

// Server is a catalog record joined with the time it was bookmarked.
type Server struct {
	catalog.Server
	SavedAt time.Time `json:"savedAt"`
}

// Collection is the ordered set of saved references. Reference ids are unique
// within the collection; insertion order is preserved.
type Collection struct {
	store *store.Store[[]Ref]
	now   func() time.Time
}

// New opens the saved-servers collection.
func New(logger hclog.Logger, opt ...store.Option) (*Collection, error) {
	st, err := store.New(logger, collectionName, func() []Ref { return []Ref{} }, opt...)
	if err != nil {
		return nil, err
	}

	return &Collection{
		store: st,
		now:   time.Now,
	}, nil
}

// Save bookmarks the given server id. Saving an already saved id is a no-op.
func (c *Collection) Save(serverID string) {
	c.store.Update(func(refs []Ref) []Ref {
		for _, r := range refs {
			if r.ServerID == serverID {
				return refs
			}
		}
		return append(refs, Ref{ServerID: serverID, SavedAt: c.now()})
	})
}

// Unsave removes the bookmark for the given server id. Absent ids are a no-op.
func (c *Collection) Unsave(serverID string) {
	c.store.Update(func(refs []Ref) []Ref {
		out := make([]Ref, 0, len(refs))
		for _, r := range refs {
			if r.ServerID != serverID {
				out = append(out, r)
			}
		}
		return out
	})
}

// Toggle flips the saved state for the given server id and reports whether it
// is saved afterwards.
func (c *Collection) Toggle(serverID string) bool {
	if c.IsSaved(serverID) {
		c.Unsave(serverID)
		return false
	}
	c.Save(serverID)
	return true
}

// IsSaved reports whether the given server id is bookmarked.
func (c *Collection) IsSaved(serverID string) bool {
	for _, r := range c.store.Value() {
		if r.ServerID == serverID {
			return true
		}
	}
	return false
}

// Refs returns the raw references in insertion order.
func (c *Collection) Refs() []Ref {
	return c.store.Value()
}

// Count returns the number of saved references.
func (c *Collection) Count() int {
	return len(c.store.Value())
}

// List joins the saved references against the catalog, in insertion order.
// References to servers that no longer exist are silently dropped, so a stale
// collection never breaks the caller.
func (c *Collection) List(cat *catalog.Catalog) []Server {
	refs := c.store.Value()
	out := make([]Server, 0, len(refs))
	for _, r := range refs {
		s, ok := cat.ServerByID(r.ServerID)
		if !ok {
			continue
		}
		out = append(out, Server{Server: s, SavedAt: r.SavedAt})
	}

	return out
}

// Clear empties the collection and removes its backing file.
func (c *Collection) Clear() {
	c.store.Remove()
}
