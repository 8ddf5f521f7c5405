package catalog

import (
	"testing"

	"github.com/samplecrate/sample-browser/internal/model"
)

func TestSortByDuration(t *testing.T) {
	view := []model.Sample{
		{ID: 1, Duration: 12.4},
		{ID: 2, Duration: 3.1},
		{ID: 3, Duration: 7.0},
	}

	Sorter{Key: SortDuration, Dir: Ascending}.Sort(view)

	want := []float64{3.1, 7.0, 12.4}
	for i, d := range want {
		if view[i].Duration != d {
			t.Errorf("Ascending position %d: expected %v, got %v", i, d, view[i].Duration)
		}
	}

	Sorter{Key: SortDuration, Dir: Descending}.Sort(view)

	want = []float64{12.4, 7.0, 3.1}
	for i, d := range want {
		if view[i].Duration != d {
			t.Errorf("Descending position %d: expected %v, got %v", i, d, view[i].Duration)
		}
	}
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	view := []model.Sample{
		{ID: 1, Name: "thunder"},
		{ID: 2, Name: "Rain"},
		{ID: 3, Name: "wind"},
	}

	Sorter{Key: SortName, Dir: Ascending}.Sort(view)

	want := []int{2, 1, 3} // rain, thunder, wind
	for i, id := range want {
		if view[i].ID != id {
			t.Errorf("Position %d: expected id %d, got %d", i, id, view[i].ID)
		}
	}
}

func TestSortFlippedDirectionReverses(t *testing.T) {
	build := func() []model.Sample {
		return []model.Sample{
			{ID: 1, Name: "breeze"},
			{ID: 2, Name: "anvil"},
			{ID: 3, Name: "creek"},
		}
	}

	asc := build()
	Sorter{Key: SortName, Dir: Ascending}.Sort(asc)

	desc := build()
	Sorter{Key: SortName, Dir: Descending}.Sort(desc)

	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("Descending order is not the reverse of ascending: %v vs %v", asc, desc)
		}
	}
}

func TestSortByTagsJoinsWithComma(t *testing.T) {
	view := []model.Sample{
		{ID: 1, Tags: []string{"wind", "storm"}},
		{ID: 2, Tags: []string{"ambient", "rain"}},
		{ID: 3}, // absent tags sort as empty string, first ascending
	}

	Sorter{Key: SortTags, Dir: Ascending}.Sort(view)

	want := []int{3, 2, 1}
	for i, id := range want {
		if view[i].ID != id {
			t.Errorf("Position %d: expected id %d, got %d", i, id, view[i].ID)
		}
	}
}

func TestSortStableOnTies(t *testing.T) {
	view := []model.Sample{
		{ID: 1, License: "CC0"},
		{ID: 2, License: "CC0"},
		{ID: 3, License: "CC0"},
	}

	Sorter{Key: SortLicense, Dir: Ascending}.Sort(view)

	for i, id := range []int{1, 2, 3} {
		if view[i].ID != id {
			t.Errorf("Ties must preserve input order, got %v", view)
		}
	}
}

func TestDirectionFlip(t *testing.T) {
	if Ascending.Flip() != Descending {
		t.Error("Ascending should flip to Descending")
	}
	if Descending.Flip() != Ascending {
		t.Error("Descending should flip to Ascending")
	}
}
