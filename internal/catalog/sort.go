package catalog

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied by Sort.
type SortKey string

const (
	// SortName orders ascending by display name using locale-aware collation.
	SortName SortKey = "name"

	// SortStars orders descending by star count, missing stats counting as zero.
	SortStars SortKey = "stars"

	// SortDownloads orders descending by download count, missing stats counting as zero.
	SortDownloads SortKey = "downloads"

	// SortFeatured places featured servers first, then orders each partition
	// ascending by name. This is the default ordering.
	SortFeatured SortKey = "featured"
)

// DefaultSort is applied when no key is specified.
const DefaultSort = SortFeatured

// ParseSortKey converts a user supplied string into a SortKey.
// An empty string yields DefaultSort.
func ParseSortKey(v string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(v))); key {
	case SortName, SortStars, SortDownloads, SortFeatured:
		return key, nil
	case "":
		return DefaultSort, nil
	default:
		return "", fmt.Errorf("invalid sort key '%s', must be one of: name, stars, downloads, featured", v)
	}
}

// Sort returns a new slice of servers ordered by key. The input is never
// mutated and equal elements keep their relative input order.
func Sort(servers []Server, key SortKey) []Server {
	out := slices.Clone(servers)

	// Collators are not safe for concurrent use, so build one per call.
	c := collate.New(language.English)

	switch key {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortStars:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].StarCount() > out[j].StarCount()
		})
	case SortDownloads:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DownloadCount() > out[j].DownloadCount()
		})
	case SortFeatured:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Featured != out[j].Featured {
				return out[i].Featured
			}
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	}

	return out
}
