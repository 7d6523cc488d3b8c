package logos

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/autoatlas/autoatlas/pkg/errors"
)

// SortOrder orders the logo explorer.
type SortOrder string

// Sort orders.
const (
	SortNameAsc  SortOrder = "name-asc"
	SortNameDesc SortOrder = "name-desc"
)

// ParseSortOrder validates a sort order. Empty means name-asc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortNameAsc:
		return SortNameAsc, nil
	case SortNameDesc:
		return SortNameDesc, nil
	default:
		return "", errors.NewValidationError("sort", s, "must be name-asc or name-desc")
	}
}

// Filter returns the logos whose name or slug contains query, case-insensitively,
// sorted by name. The input slice is not modified.
func Filter(logos []Logo, query string, order SortOrder) []Logo {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Logo, 0, len(logos))
	for _, l := range logos {
		if q == "" || strings.Contains(strings.ToLower(l.Name), q) || strings.Contains(strings.ToLower(l.Slug), q) {
			out = append(out, l)
		}
	}

	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := col.CompareString(out[i].Name, out[j].Name)
		if order == SortNameDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}
