package saved

import (
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/mcp-hub/mcphub/internal/catalog"
	"github.com/mcp-hub/mcphub/internal/store"
)

func newTestCollection(t *testing.T) *Collection {
	t.Helper()

	c, err := New(hclog.NewNullLogger(), store.WithDirectory(t.TempDir()))
	require.NoError(t, err)

	return c
}

func TestCollection_SaveIsIdempotent(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)

	c.Save("filesystem")
	c.Save("filesystem")

	require.Equal(t, 1, c.Count())
	require.True(t, c.IsSaved("filesystem"))
}

func TestCollection_UnsaveAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)
	c.Save("filesystem")

	c.Unsave("github")

	require.Equal(t, 1, c.Count())
	require.True(t, c.IsSaved("filesystem"))
}

func TestCollection_Toggle(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)

	require.True(t, c.Toggle("filesystem"))
	require.True(t, c.IsSaved("filesystem"))

	require.False(t, c.Toggle("filesystem"))
	require.False(t, c.IsSaved("filesystem"))
	require.Zero(t, c.Count())
}

func TestCollection_RefsPreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)
	c.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	c.Save("github")
	c.Save("filesystem")
	c.Save("postgres")

	refs := c.Refs()
	require.Len(t, refs, 3)
	require.Equal(t, "github", refs[0].ServerID)
	require.Equal(t, "filesystem", refs[1].ServerID)
	require.Equal(t, "postgres", refs[2].ServerID)
	require.Equal(t, c.now(), refs[0].SavedAt)
}

func TestCollection_ListDropsStaleReferences(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Load(hclog.NewNullLogger())
	require.NoError(t, err)

	c := newTestCollection(t)
	c.Save("filesystem")
	c.Save("no-longer-listed")
	c.Save("github")

	got := c.List(cat)

	require.Len(t, got, 2)
	require.Equal(t, "filesystem", got[0].ID)
	require.Equal(t, "github", got[1].ID)
	require.False(t, got[0].SavedAt.IsZero())

	// The stale reference itself is kept in the collection.
	require.Equal(t, 3, c.Count())
}

func TestCollection_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	c, err := New(hclog.NewNullLogger(), store.WithDirectory(dir))
	require.NoError(t, err)
	c.Save("filesystem")

	c2, err := New(hclog.NewNullLogger(), store.WithDirectory(dir))
	require.NoError(t, err)
	require.True(t, c2.IsSaved("filesystem"))
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t)
	c.Save("filesystem")
	c.Save("github")

	c.Clear()

	require.Zero(t, c.Count())
	require.False(t, c.IsSaved("filesystem"))
}
