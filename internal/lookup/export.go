package lookup

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ExportFormat represents supported export formats
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
)

// EntryExport is one resolved label and meaning pair.
type EntryExport struct {
	Label       string `json:"label"`
	DisplayName string `json:"display_name"`
	Meaning     string `json:"meaning"`
}

// Export writes the resolved flower table, sorted by label, in the given format.
// Duplicate keys appear once with the value that won.
func Export(idx *Index, format string, writer io.Writer) error {
	exportFormat := ExportFormat(strings.ToLower(format))

	labels := idx.Labels()
	exports := make([]EntryExport, 0, len(labels))
	for _, label := range labels {
		meaning, _ := idx.Meaning(label)
		exports = append(exports, EntryExport{
			Label:       label,
			DisplayName: DisplayName(label),
			Meaning:     meaning,
		})
	}

	switch exportFormat {
	case FormatJSON:
		return exportJSON(exports, writer)
	case FormatCSV:
		return exportCSV(exports, writer)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: json, csv)", format)
	}
}

func exportJSON(exports []EntryExport, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exports)
}

func exportCSV(exports []EntryExport, writer io.Writer) error {
	w := csv.NewWriter(writer)
	if err := w.Write([]string{"Label", "Flower", "Meaning"}); err != nil {
		return err
	}
	for _, e := range exports {
		if err := w.Write([]string{e.Label, e.DisplayName, e.Meaning}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
