// Package dataset loads the language-of-flowers table from a delimited text file.
// Parsing is permissive: malformed rows are skipped and counted rather than failing
// the whole load, and only a missing file or an unreadable header is an error.
package dataset

// Column names expected in the header row. Matching is case-insensitive.
const (
	ColumnColor   = "Color"
	ColumnFlower  = "Flower"
	ColumnMeaning = "Meaning"
)

// Record is a single (color, flower, meaning) row.
type Record struct {
	// Color is optional and may be empty
	Color string `json:"color,omitempty"`

	// Flower is the flower name without its color
	Flower string `json:"flower"`

	// Meaning is the traditional symbolic meaning
	Meaning string `json:"meaning"`
}

// Table is the parsed dataset. It is never mutated after Load returns.
type Table struct {
	// Columns holds the trimmed header names in file order
	Columns []string `json:"columns"`

	// Records holds the accepted rows in file order
	Records []Record `json:"records"`

	// Skipped counts rows dropped during best-effort parsing
	Skipped int `json:"skipped"`
}

// Len returns the number of accepted records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}
