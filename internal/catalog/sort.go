package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/samplecrate/sample-browser/internal/model"
)

// SortKey identifies the column a view is ordered by
type SortKey string

const (
	SortName        SortKey = "name"
	SortAuthor      SortKey = "author"
	SortDuration    SortKey = "duration"
	SortDescription SortKey = "description"
	SortLicense     SortKey = "license"
	SortTags        SortKey = "tags"
)

// Direction of a sort
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// collator provides locale-aware string ordering for sort comparisons.
var collator = collate.New(language.Und)

// Sorter orders a filtered view by one key and direction. Ties preserve
// input order (stable sort); there is no secondary key.
type Sorter struct {
	Key SortKey
	Dir Direction
}

// Sort orders the view in place.
func (srt Sorter) Sort(view []model.Sample) {
	sort.SliceStable(view, func(i, j int) bool {
		cmp := srt.compare(&view[i], &view[j])
		if srt.Dir == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})
}

// compare follows the coercion rule: numeric keys compare numerically,
// everything else compares as lowercased strings (arrays joined with ", ",
// absent values as empty strings).
func (srt Sorter) compare(a, b *model.Sample) int {
	if srt.Key == SortDuration {
		switch {
		case a.Duration < b.Duration:
			return -1
		case a.Duration > b.Duration:
			return 1
		default:
			return 0
		}
	}

	sa := strings.ToLower(srt.stringValue(a))
	sb := strings.ToLower(srt.stringValue(b))
	return collator.CompareString(sa, sb)
}

func (srt Sorter) stringValue(s *model.Sample) string {
	switch srt.Key {
	case SortName:
		return s.Name
	case SortAuthor:
		return s.Author
	case SortDescription:
		return s.Description
	case SortLicense:
		return s.License
	case SortTags:
		return strings.Join(s.Tags, ", ")
	default:
		return ""
	}
}
