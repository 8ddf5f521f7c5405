package catalog

import (
	"testing"

	"github.com/samplecrate/sample-browser/internal/model"
)

func testCatalog() []model.Sample {
	return []model.Sample{
		{ID: 1, Title: "Rain", Enabled: true, License: "CC0", Tags: []string{"rain", "nature"}},
		{ID: 2, Title: "Wind", Enabled: false, License: "CC-BY", Tags: []string{"wind"}},
		{ID: 3, Name: "thunder.wav", Author: "stormchaser", Enabled: true, License: "CC0"},
	}
}

func TestApplyHidesDisabled(t *testing.T) {
	view := Filters{ShowDisabled: false}.Apply(testCatalog())

	if len(view) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(view))
	}
	for _, s := range view {
		if s.ID == 2 {
			t.Error("Disabled record should be hidden when ShowDisabled is off")
		}
	}
}

func TestApplyShowDisabled(t *testing.T) {
	view := Filters{ShowDisabled: true}.Apply(testCatalog())
	if len(view) != 3 {
		t.Errorf("Expected full catalog, got %d records", len(view))
	}
}

func TestSearchMatchesAnyTextField(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []int
	}{
		{"title match", "rain", []int{1}},
		{"case insensitive", "RAIN", []int{1}},
		{"name match", "thunder", []int{3}},
		{"author match", "stormchaser", []int{3}},
		{"no match", "whale", nil},
		{"empty matches all", "", []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Filters{Search: tt.search}.Apply(testCatalog())

			var ids []int
			for _, s := range view {
				ids = append(ids, s.ID)
			}
			if len(ids) != len(tt.want) {
				t.Fatalf("Expected ids %v, got %v", tt.want, ids)
			}
			for i := range ids {
				if ids[i] != tt.want[i] {
					t.Errorf("Expected ids %v, got %v", tt.want, ids)
				}
			}
		})
	}
}

func TestTagFilterExactMatch(t *testing.T) {
	view := Filters{Tag: "rain", ShowDisabled: true}.Apply(testCatalog())
	if len(view) != 1 || view[0].ID != 1 {
		t.Errorf("Expected only record 1, got %v", view)
	}

	// substring of a tag must not match
	view = Filters{Tag: "rai", ShowDisabled: true}.Apply(testCatalog())
	if len(view) != 0 {
		t.Errorf("Partial tag should not match, got %v", view)
	}
}

func TestLicenseFilterExactMatch(t *testing.T) {
	view := Filters{License: "CC0", ShowDisabled: true}.Apply(testCatalog())
	if len(view) != 2 {
		t.Errorf("Expected 2 CC0 records, got %d", len(view))
	}
}

func TestPredicatesCommute(t *testing.T) {
	// The combined filter must equal the intersection of the individual
	// predicates regardless of evaluation order.
	combined := Filters{Search: "rain", Tag: "rain", License: "CC0", ShowDisabled: false}

	catalog := testCatalog()
	view := combined.Apply(catalog)

	var manual []model.Sample
	for _, s := range catalog {
		a := Filters{Search: "rain", ShowDisabled: true}.Match(s)
		b := Filters{Tag: "rain", ShowDisabled: true}.Match(s)
		c := Filters{License: "CC0", ShowDisabled: true}.Match(s)
		d := Filters{ShowDisabled: false}.Match(s)
		if d && c && b && a { // deliberately reversed evaluation order
			manual = append(manual, s)
		}
	}

	if len(view) != len(manual) {
		t.Fatalf("Combined filter (%d) differs from predicate intersection (%d)", len(view), len(manual))
	}
	for i := range view {
		if view[i].ID != manual[i].ID {
			t.Errorf("Order mismatch at %d: %d vs %d", i, view[i].ID, manual[i].ID)
		}
	}
}

func TestAbsentFieldsDoNotError(t *testing.T) {
	empty := model.Sample{ID: 9, Enabled: true}

	if (Filters{Search: "anything"}).Match(empty) {
		t.Error("Record with no text fields should not match a search")
	}
	if (Filters{Tag: "rain"}).Match(empty) {
		t.Error("Record with no tags should not match a tag filter")
	}
	if !(Filters{}).Match(empty) {
		t.Error("Empty filter should match an enabled record")
	}
}

func TestTagOptions(t *testing.T) {
	tags := TagOptions(testCatalog())
	expected := []string{"nature", "rain", "wind"}
	if len(tags) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, tags)
	}
	for i := range tags {
		if tags[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, tags)
		}
	}
}

func TestLicenseOptions(t *testing.T) {
	licenses := LicenseOptions(testCatalog())
	expected := []string{"CC-BY", "CC0"}
	if len(licenses) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, licenses)
	}
	for i := range licenses {
		if licenses[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, licenses)
		}
	}
}
