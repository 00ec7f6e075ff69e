package lookup

import (
	"reflect"
	"testing"

	"github.com/Yates-Labs/floriography/internal/dataset"
)

func fixture() *dataset.Table {
	return &dataset.Table{
		Columns: []string{"Color", "Flower", "Meaning"},
		Records: []dataset.Record{
			{Color: "Red", Flower: "Rose", Meaning: "Love"},
			{Color: "", Flower: "Tulip", Meaning: "Fame"},
			{Color: "White", Flower: "Lily", Meaning: " Purity "},
		},
	}
}

func TestBuild_Scenario(t *testing.T) {
	idx := Build(fixture())

	if got := idx.MeaningByLabel["red rose"]; got != "Love" {
		t.Errorf("expected meaningByLabel[red rose] = Love, got %q", got)
	}

	label, ok := idx.Flower("love")
	if !ok {
		t.Fatal("reverse lookup for love missed")
	}
	if label != "Red Rose" {
		t.Errorf("expected display label Red Rose, got %q", label)
	}
	if Normalize(label) != "red rose" {
		t.Errorf("expected normalized label red rose, got %q", Normalize(label))
	}
	if DisplayName("red rose") != "Red Rose" {
		t.Errorf("unexpected display name %q", DisplayName("red rose"))
	}
}

func TestBuild_KeySetMatchesRows(t *testing.T) {
	table := fixture()
	idx := Build(table)

	want := map[string]bool{}
	for _, rec := range table.Records {
		want[Normalize(Label(rec.Color, rec.Flower))] = true
	}

	if len(idx.MeaningByLabel) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(idx.MeaningByLabel))
	}
	for k := range want {
		if _, ok := idx.MeaningByLabel[k]; !ok {
			t.Errorf("missing label %q", k)
		}
	}

	if _, ok := idx.MeaningByLabel["tulip"]; !ok {
		t.Error("colorless label should not carry a leading space")
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	table := fixture()
	idx := Build(table)

	for _, rec := range table.Records {
		label := Label(rec.Color, rec.Flower)
		meaning, ok := idx.Meaning(label)
		if !ok {
			t.Fatalf("forward lookup missed %q", label)
		}
		back, ok := idx.Flower(meaning)
		if !ok {
			t.Fatalf("reverse lookup missed %q", meaning)
		}
		if back != label {
			t.Errorf("round trip: expected %q, got %q", label, back)
		}
	}
}

func TestBuild_LastWriteWins(t *testing.T) {
	table := &dataset.Table{
		Records: []dataset.Record{
			{Color: "Red", Flower: "Rose", Meaning: "Love"},
			{Color: "red", Flower: "ROSE", Meaning: "Passion"},
			{Color: "Pink", Flower: "Rose", Meaning: "Passion"},
		},
	}

	idx := Build(table)

	if got, _ := idx.Meaning("Red Rose"); got != "Passion" {
		t.Errorf("expected later row to win, got %q", got)
	}
	if got, _ := idx.Flower("passion"); got != "Pink Rose" {
		t.Errorf("expected later label to win, got %q", got)
	}
	if len(idx.Duplicates) != 2 {
		t.Fatalf("expected 2 duplicates, got %d: %+v", len(idx.Duplicates), idx.Duplicates)
	}
	if idx.Duplicates[0].Kind != "label" || idx.Duplicates[1].Kind != "meaning" {
		t.Errorf("unexpected duplicate kinds: %+v", idx.Duplicates)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := Build(fixture())
	b := Build(fixture())

	if !reflect.DeepEqual(a, b) {
		t.Error("building the same table twice produced different indexes")
	}
}

func TestBuild_Empty(t *testing.T) {
	for _, table := range []*dataset.Table{nil, {}} {
		idx := Build(table)
		if idx.Len() != 0 || len(idx.LabelByMeaning) != 0 {
			t.Errorf("expected empty maps, got %+v", idx)
		}
		if _, ok := idx.Meaning("red rose"); ok {
			t.Error("expected a miss on an empty index")
		}
		if _, ok := idx.Flower("love"); ok {
			t.Error("expected a miss on an empty index")
		}
	}
}

func TestIndex_SortedVocabulary(t *testing.T) {
	idx := Build(fixture())

	wantLabels := []string{"red rose", "tulip", "white lily"}
	if got := idx.Labels(); !reflect.DeepEqual(got, wantLabels) {
		t.Errorf("expected %v, got %v", wantLabels, got)
	}

	wantMeanings := []string{"fame", "love", "purity"}
	if got := idx.Meanings(); !reflect.DeepEqual(got, wantMeanings) {
		t.Errorf("expected %v, got %v", wantMeanings, got)
	}
}

func TestIndex_NilSafe(t *testing.T) {
	var idx *Index
	if idx.Len() != 0 || idx.Labels() != nil || idx.Meanings() != nil {
		t.Error("nil index should behave as empty")
	}
}
