package catalog

import (
	"slices"
	"strconv"

	"github.com/mcp-hub/mcphub/internal/filter"
)

// FilterSpec is the set of active predicates used to narrow the catalog view.
// Zero values (empty string, nil pointer, empty slice) deactivate a predicate;
// active predicates are combined with logical AND.
type FilterSpec struct {
	// Search matches case-insensitively as a substring of the name,
	// description, or any tag.
	Search string

	// Category restricts to an exact category id.
	Category *string

	// Type restricts to an exact transport type.
	Type *ServerType

	// Source restricts to an exact listing source.
	Source *Source

	// Tags requires the server's tag set to be a superset of these tags.
	Tags []string

	// Verified is tri-state: nil means don't care.
	Verified *bool
}

// filters converts the spec into the named filters understood by the generic
// predicate engine. Tags are carried through as-is: a tag value containing a
// comma is a single required tag, never several.
func (s FilterSpec) filters() map[string][]string {
	f := make(map[string][]string)

	// A whitespace-only search is an active filter matching the literal string.
	if s.Search != "" {
		f["search"] = []string{s.Search}
	}
	if s.Category != nil {
		f["category"] = []string{*s.Category}
	}
	if s.Type != nil {
		f["type"] = []string{string(*s.Type)}
	}
	if s.Source != nil {
		f["source"] = []string{string(*s.Source)}
	}
	if len(s.Tags) > 0 {
		f["tags"] = s.Tags
	}
	if s.Verified != nil {
		f["verified"] = []string{strconv.FormatBool(*s.Verified)}
	}

	return f
}

// serverMatchers maps filter names to their predicates over Server records.
var serverMatchers = map[string]filter.Predicate[Server]{
	"search": filter.Substring(func(s Server) []string {
		return append([]string{s.Name, s.Description}, s.Tags...)
	}),
	"category": filter.Equals(func(s Server) string { return s.Category }),
	"type":     filter.Equals(func(s Server) string { return string(s.Type) }),
	"source":   filter.Equals(func(s Server) string { return string(s.Source) }),
	"tags":     filter.ContainsAll(func(s Server) []string { return s.Tags }),
	"verified": filter.Bool(func(s Server) bool { return s.Verified }),
}

var serverFilterOpts = func() filter.Options[Server] {
	opts, err := filter.NewOptions(filter.WithMatchers(serverMatchers))
	if err != nil {
		panic(err) // static matcher set, cannot fail
	}
	return opts
}()

// Filter returns the subsequence of servers satisfying every active predicate
// in spec. The result preserves input order and the input is never mutated.
// An all-empty spec returns a copy of the input.
func Filter(servers []Server, spec FilterSpec) []Server {
	return filter.Apply(servers, spec.filters(), serverFilterOpts)
}

// AllTags returns the union of every server's tags, deduplicated and sorted
// ascending.
func AllTags(servers []Server) []string {
	set := make(map[string]struct{})
	for _, s := range servers {
		for _, tag := range s.Tags {
			set[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// WithCounts returns a copy of categories with ServerCount set to the number
// of servers referencing each category. Neither input is mutated.
func WithCounts(categories []Category, servers []Server) []Category {
	counts := make(map[string]int, len(categories))
	for _, s := range servers {
		counts[s.Category]++
	}

	out := make([]Category, len(categories))
	for i, cat := range categories {
		cat.ServerCount = counts[cat.ID]
		out[i] = cat
	}

	return out
}
