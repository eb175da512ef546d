// Package filter provides a generic predicate-map engine for narrowing slices
// of records based on named, multi-valued filters.
package filter

import (
	"strconv"
	"strings"
)

// Predicate defines a function that returns true if the given item matches a condition.
// Filters are multi-valued; scalar predicates consider only the first value,
// set predicates consider all of them.
//
// This type is intended for use as a predicate function in filtering operations,
// allowing flexible and reusable filtering logic to be passed as arguments.
type Predicate[T any] func(item T, filterValues []string) bool

// Options holds configuration for filtering behavior.
type Options[T any] struct {
	matchers map[string]Predicate[T]
	logFunc  func(key string, values []string)
}

// Option configures filter Options.
type Option[T any] func(*Options[T]) error

func defaultOptions[T any]() Options[T] {
	return Options[T]{
		matchers: make(map[string]Predicate[T]),
		logFunc:  func(key string, values []string) {}, // no-op
	}
}

// NewOptions creates an Options with defaults and applies given options.
func NewOptions[T any](opt ...Option[T]) (Options[T], error) {
	opts := defaultOptions[T]()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return Options[T]{}, err
		}
	}

	return opts, nil
}

// WithMatchers registers predicates keyed by normalized filter name.
func WithMatchers[T any](m map[string]Predicate[T]) Option[T] {
	return func(o *Options[T]) error {
		for k, v := range m {
			o.matchers[NormalizeString(k)] = v
		}
		return nil
	}
}

// WithLogFunc sets a function invoked for every filter key that has no
// registered matcher. Unmatched keys are otherwise silently ignored.
func WithLogFunc[T any](log func(key string, values []string)) Option[T] {
	return func(o *Options[T]) error {
		if log == nil {
			return nil
		}
		o.logFunc = log
		return nil
	}
}

// NormalizeString can be used to normalize a string value for filtering/comparison.
// The value is made lowercase and has any leading and/or trailing whitespace removed.
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSlice can be used to normalize all values of a slice, returning a new slice.
// The values are normalized with the same behavior as NormalizeString.
func NormalizeSlice(s []string) []string {
	s2 := make([]string, len(s))
	for i := range s {
		s2[i] = NormalizeString(s[i])
	}
	return s2
}

// Match reports whether the item satisfies every filter that has a registered
// matcher. Filters with no values are inactive; filters without a matcher are
// skipped (and reported to the log function). A nil or empty filters map
// matches everything.
func Match[T any](item T, filters map[string][]string, opts Options[T]) bool {
	for key, values := range filters {
		if len(values) == 0 {
			continue
		}
		matcher, ok := opts.matchers[NormalizeString(key)]
		if !ok {
			opts.logFunc(key, values)
			continue
		}
		if !matcher(item, values) {
			return false
		}
	}

	return true
}

// Apply returns the subsequence of items matching all filters, preserving the
// input order. The input slice is never mutated.
func Apply[T any](items []T, filters map[string][]string, opts Options[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Match(item, filters, opts) {
			out = append(out, item)
		}
	}

	return out
}

// Equals builds a predicate matching items whose extracted value equals the
// first filter value exactly.
func Equals[T any](extract func(T) string) Predicate[T] {
	return func(item T, values []string) bool {
		return extract(item) == values[0]
	}
}

// Substring builds a predicate matching items where any extracted field
// contains the first filter value, case-insensitively. The query is matched
// as given, whitespace included.
func Substring[T any](extract func(T) []string) Predicate[T] {
	return func(item T, values []string) bool {
		q := strings.ToLower(values[0])
		for _, field := range extract(item) {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
}

// ContainsAll builds a predicate matching items whose extracted values form a
// superset of the filter values (AND semantics). Values are compared exactly,
// so entries containing separators or mixed case are matched as-is.
func ContainsAll[T any](extract func(T) []string) Predicate[T] {
	return func(item T, required []string) bool {
		have := extract(item)
		set := make(map[string]struct{}, len(have))
		for _, v := range have {
			set[v] = struct{}{}
		}
		for _, req := range required {
			if _, ok := set[req]; !ok {
				return false
			}
		}
		return true
	}
}

// Bool builds a predicate comparing an extracted boolean against the parsed
// first filter value. Unparsable filter values never match.
func Bool[T any](extract func(T) bool) Predicate[T] {
	return func(item T, values []string) bool {
		want, err := strconv.ParseBool(NormalizeString(values[0]))
		if err != nil {
			return false
		}
		return extract(item) == want
	}
}
