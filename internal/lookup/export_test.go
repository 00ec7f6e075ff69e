package lookup

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
)

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer

	if err := Export(Build(fixture()), "JSON", &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var exports []EntryExport
	if err := json.Unmarshal(buf.Bytes(), &exports); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if len(exports) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(exports))
	}
	if exports[0].Label != "red rose" || exports[0].DisplayName != "Red Rose" || exports[0].Meaning != "Love" {
		t.Errorf("unexpected first entry %+v", exports[0])
	}
	if exports[1].Label != "tulip" {
		t.Errorf("expected entries sorted by label, got %q second", exports[1].Label)
	}
}

func TestExport_CSV(t *testing.T) {
	var buf bytes.Buffer

	if err := Export(Build(fixture()), "csv", &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV output: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "Label,Flower,Meaning" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[2][0] != "tulip" || rows[2][2] != "Fame" {
		t.Errorf("unexpected row %v", rows[2])
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer

	err := Export(Build(fixture()), "xml", &buf)
	if err == nil {
		t.Fatal("Expected error for unsupported format, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported export format") {
		t.Errorf("Expected 'unsupported export format' error, got: %v", err)
	}
}
