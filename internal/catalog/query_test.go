package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func queryFixture() []Server {
	return []Server{
		{
			ID: "alpha", Slug: "alpha", Name: "Alpha", Description: "File browsing",
			Type: TypeStdio, Category: "utilities", Tags: []string{"files", "local"},
			Source: SourceOfficial, Verified: true,
		},
		{
			ID: "beta", Slug: "beta", Name: "Beta", Description: "Web search",
			Type: TypeHTTP, Category: "search", Tags: []string{"web", "files"},
			Source: SourceCommunity, Verified: false,
		},
		{
			ID: "gamma", Slug: "gamma", Name: "Gamma", Description: "Database files",
			Type: TypeStdio, Category: "databases", Tags: []string{"sql"},
			Source: SourceOfficial, Verified: true,
		},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    FilterSpec
		wantIDs []string
	}{
		{
			name:    "empty spec returns everything in order",
			spec:    FilterSpec{},
			wantIDs: []string{"alpha", "beta", "gamma"},
		},
		{
			name:    "search matches name",
			spec:    FilterSpec{Search: "alph"},
			wantIDs: []string{"alpha"},
		},
		{
			name:    "search matches description case-insensitively",
			spec:    FilterSpec{Search: "FILE"},
			wantIDs: []string{"alpha", "beta", "gamma"},
		},
		{
			name:    "search matches tags",
			spec:    FilterSpec{Search: "sql"},
			wantIDs: []string{"gamma"},
		},
		{
			name:    "search without match returns empty",
			spec:    FilterSpec{Search: "zzz"},
			wantIDs: []string{},
		},
		{
			name:    "category exact match",
			spec:    FilterSpec{Category: ptr("search")},
			wantIDs: []string{"beta"},
		},
		{
			name:    "type exact match",
			spec:    FilterSpec{Type: ptr(TypeStdio)},
			wantIDs: []string{"alpha", "gamma"},
		},
		{
			name:    "source exact match",
			spec:    FilterSpec{Source: ptr(SourceCommunity)},
			wantIDs: []string{"beta"},
		},
		{
			name:    "single tag",
			spec:    FilterSpec{Tags: []string{"files"}},
			wantIDs: []string{"alpha", "beta"},
		},
		{
			name:    "multiple tags require all of them",
			spec:    FilterSpec{Tags: []string{"files", "local"}},
			wantIDs: []string{"alpha"},
		},
		{
			name:    "tags are compared exactly",
			spec:    FilterSpec{Tags: []string{"Files"}},
			wantIDs: []string{},
		},
		{
			name:    "search query is matched verbatim",
			spec:    FilterSpec{Search: "browsing "},
			wantIDs: []string{},
		},
		{
			name:    "verified true",
			spec:    FilterSpec{Verified: ptr(true)},
			wantIDs: []string{"alpha", "gamma"},
		},
		{
			name:    "verified false",
			spec:    FilterSpec{Verified: ptr(false)},
			wantIDs: []string{"beta"},
		},
		{
			name: "all predicates are ANDed",
			spec: FilterSpec{
				Search:   "file",
				Type:     ptr(TypeStdio),
				Verified: ptr(true),
				Tags:     []string{"files"},
			},
			wantIDs: []string{"alpha"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			items := queryFixture()
			got := Filter(items, tc.spec)

			gotIDs := make([]string, 0, len(got))
			for _, s := range got {
				gotIDs = append(gotIDs, s.ID)
			}
			require.Equal(t, tc.wantIDs, gotIDs)

			// The input must never be mutated.
			require.Equal(t, queryFixture(), items)
		})
	}
}

func TestFilter_CommaBearingTag(t *testing.T) {
	t.Parallel()

	// Custom listings accept arbitrary tag strings, commas included. A tag
	// value containing a comma must stay one required tag.
	servers := []Server{
		{ID: "combined", Name: "Combined", Tags: []string{"data,sql"}},
		{ID: "split", Name: "Split", Tags: []string{"data", "sql"}},
	}

	got := Filter(servers, FilterSpec{Tags: []string{"data,sql"}})
	require.Len(t, got, 1)
	require.Equal(t, "combined", got[0].ID)

	got = Filter(servers, FilterSpec{Tags: []string{"data", "sql"}})
	require.Len(t, got, 1)
	require.Equal(t, "split", got[0].ID)
}

func TestAllTags(t *testing.T) {
	t.Parallel()

	tags := AllTags(queryFixture())

	require.Equal(t, []string{"files", "local", "sql", "web"}, tags)

	// No duplicates even though "files" appears on two servers.
	seen := make(map[string]int)
	for _, tag := range tags {
		seen[tag]++
		require.Equal(t, 1, seen[tag])
	}
}

func TestAllTags_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, AllTags(nil))
}

func TestWithCounts(t *testing.T) {
	t.Parallel()

	categories := []Category{
		{ID: "utilities", Name: "Utilities"},
		{ID: "search", Name: "Search"},
		{ID: "databases", Name: "Databases"},
		{ID: "empty", Name: "Empty"},
	}
	servers := queryFixture()

	got := WithCounts(categories, servers)

	require.Len(t, got, len(categories))
	require.Equal(t, 1, got[0].ServerCount)
	require.Equal(t, 1, got[1].ServerCount)
	require.Equal(t, 1, got[2].ServerCount)
	require.Equal(t, 0, got[3].ServerCount)

	// Counts across a partitioning category set sum to the server count.
	total := 0
	for _, c := range got {
		total += c.ServerCount
	}
	require.Equal(t, len(servers), total)

	// Inputs are not mutated.
	require.Zero(t, categories[0].ServerCount)
}
