package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/samplecrate/sample-browser/internal/model"
)

// Filters holds the current filter criteria. The zero value matches every
// enabled record.
type Filters struct {
	Search       string
	Tag          string
	License      string
	ShowDisabled bool
}

// Apply reduces the catalog to the subsequence satisfying all four
// predicates. Predicates are independent and commute; absent fields are
// treated as non-matching, never as errors.
func (f Filters) Apply(samples []model.Sample) []model.Sample {
	view := make([]model.Sample, 0, len(samples))
	for _, s := range samples {
		if f.Match(s) {
			view = append(view, s)
		}
	}
	return view
}

// Match reports whether a single record passes the filter set.
func (f Filters) Match(s model.Sample) bool {
	if !f.ShowDisabled && !s.Enabled {
		return false
	}
	if !f.matchSearch(s) {
		return false
	}
	if f.Tag != "" && !slices.Contains(s.Tags, f.Tag) {
		return false
	}
	if f.License != "" && s.License != f.License {
		return false
	}
	return true
}

func (f Filters) matchSearch(s model.Sample) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	for _, field := range []string{s.Title, s.Name, s.Author, s.Attribution, s.Description} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// TagOptions returns the sorted set of tags present in the catalog, for the
// filter dropdown.
func TagOptions(samples []model.Sample) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, s := range samples {
		for _, tag := range s.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// LicenseOptions returns the sorted set of licenses present in the catalog.
func LicenseOptions(samples []model.Sample) []string {
	seen := make(map[string]bool)
	var licenses []string
	for _, s := range samples {
		if s.License != "" && !seen[s.License] {
			seen[s.License] = true
			licenses = append(licenses, s.License)
		}
	}
	sort.Strings(licenses)
	return licenses
}
