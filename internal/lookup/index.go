// Package lookup builds the two case-insensitive indexes over the flower dataset:
// flower label to meaning, and meaning back to flower label.
package lookup

import (
	"sort"
	"strings"

	"github.com/Yates-Labs/floriography/internal/dataset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Duplicate records a key collision observed while building. The later row wins.
type Duplicate struct {
	// Kind is "label" for the forward map and "meaning" for the reverse map
	Kind string `json:"kind"`

	// Key is the normalized key that collided
	Key string `json:"key"`

	// Previous is the value that was overwritten
	Previous string `json:"previous"`

	// Current is the value that replaced it
	Current string `json:"current"`
}

// Index holds both lookup maps for one loaded dataset. It is read-only once built.
type Index struct {
	// MeaningByLabel maps a normalized flower label to its meaning
	MeaningByLabel map[string]string `json:"meaning_by_label"`

	// LabelByMeaning maps a normalized meaning to the flower label in display form
	LabelByMeaning map[string]string `json:"label_by_meaning"`

	// Duplicates lists the collisions resolved by last-write-wins, in row order
	Duplicates []Duplicate `json:"duplicates,omitempty"`
}

// Normalize lower-cases and trims s. Every map key goes through it.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// Label joins color and flower into the display form of a flower label.
func Label(color, flower string) string {
	return strings.TrimSpace(color + " " + flower)
}

// Build derives the index from table. Later rows overwrite earlier ones on collision.
func Build(table *dataset.Table) *Index {
	idx := &Index{
		MeaningByLabel: make(map[string]string),
		LabelByMeaning: make(map[string]string),
	}
	if table == nil {
		return idx
	}

	for _, rec := range table.Records {
		label := Label(rec.Color, rec.Flower)
		labelKey := Normalize(label)
		meaningKey := Normalize(rec.Meaning)

		if prev, ok := idx.MeaningByLabel[labelKey]; ok && prev != rec.Meaning {
			idx.Duplicates = append(idx.Duplicates, Duplicate{Kind: "label", Key: labelKey, Previous: prev, Current: rec.Meaning})
		}
		idx.MeaningByLabel[labelKey] = rec.Meaning

		if prev, ok := idx.LabelByMeaning[meaningKey]; ok && prev != label {
			idx.Duplicates = append(idx.Duplicates, Duplicate{Kind: "meaning", Key: meaningKey, Previous: prev, Current: label})
		}
		idx.LabelByMeaning[meaningKey] = label
	}

	return idx
}

// Meaning returns the meaning recorded for a flower label.
func (idx *Index) Meaning(label string) (string, bool) {
	if idx == nil {
		return "", false
	}
	m, ok := idx.MeaningByLabel[Normalize(label)]
	return m, ok
}

// Flower returns the flower label, in display form, associated with a meaning.
func (idx *Index) Flower(meaning string) (string, bool) {
	if idx == nil {
		return "", false
	}
	l, ok := idx.LabelByMeaning[Normalize(meaning)]
	return l, ok
}

// Labels returns the sorted normalized flower labels.
func (idx *Index) Labels() []string {
	if idx == nil {
		return nil
	}
	return sortedKeys(idx.MeaningByLabel)
}

// Meanings returns the sorted normalized meanings.
func (idx *Index) Meanings() []string {
	if idx == nil {
		return nil
	}
	return sortedKeys(idx.LabelByMeaning)
}

// Len returns the number of distinct flower labels.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.MeaningByLabel)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DisplayName title-cases s for presentation: "red rose" becomes "Red Rose".
func DisplayName(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
