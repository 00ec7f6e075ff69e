package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrFileNotFound = errors.New("dataset file not found")
	ErrParse        = errors.New("dataset parse error")
)

// ParseError carries the parser diagnostic for a file that could not be read at all.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrParse, e.Msg)
}

// Is lets errors.Is(err, ErrParse) match any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Load reads the dataset at path. A .tsv extension selects tab as the delimiter.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}
	return ParseDelimited(f, comma)
}

// Parse reads comma-separated data from r.
func Parse(r io.Reader) (*Table, error) {
	return ParseDelimited(r, ',')
}

// ParseDelimited reads delimited data from r. A leading UTF-8 byte-order mark is
// dropped. Rows that the csv reader rejects, that carry more fields than the
// header, or that lack a flower or meaning, are skipped.
func ParseDelimited(r io.Reader, comma rune) (*Table, error) {
	// BOMOverride strips a UTF-8 BOM and passes everything else through untouched.
	decoded := transform.NewReader(bufio.NewReader(r), unicode.BOMOverride(transform.Nop))

	reader := csv.NewReader(decoded)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Msg: "no header row"}
		}
		return nil, &ParseError{Msg: err.Error()}
	}

	columns := make([]string, len(header))
	for i, cell := range header {
		columns[i] = strings.TrimSpace(cell)
	}

	idx, err := resolveColumns(columns)
	if err != nil {
		return nil, err
	}

	table := &Table{Columns: columns, Records: []Record{}}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				table.Skipped++
				continue
			}
			return nil, &ParseError{Msg: err.Error()}
		}

		if len(row) > len(columns) {
			table.Skipped++
			continue
		}

		rec, ok := idx.record(row)
		if !ok {
			table.Skipped++
			continue
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

type columnIndex struct {
	color   int
	flower  int
	meaning int
}

func resolveColumns(columns []string) (columnIndex, error) {
	idx := columnIndex{color: -1, flower: -1, meaning: -1}
	for i, name := range columns {
		switch {
		case strings.EqualFold(name, ColumnColor) && idx.color < 0:
			idx.color = i
		case strings.EqualFold(name, ColumnFlower) && idx.flower < 0:
			idx.flower = i
		case strings.EqualFold(name, ColumnMeaning) && idx.meaning < 0:
			idx.meaning = i
		}
	}

	var missing []string
	if idx.flower < 0 {
		missing = append(missing, ColumnFlower)
	}
	if idx.meaning < 0 {
		missing = append(missing, ColumnMeaning)
	}
	if len(missing) > 0 {
		return idx, &ParseError{Msg: fmt.Sprintf("missing required column(s): %s", strings.Join(missing, ", "))}
	}
	return idx, nil
}

func (c columnIndex) record(row []string) (Record, bool) {
	if c.flower >= len(row) || c.meaning >= len(row) {
		return Record{}, false
	}

	rec := Record{
		Flower:  row[c.flower],
		Meaning: row[c.meaning],
	}
	if c.color >= 0 && c.color < len(row) {
		rec.Color = row[c.color]
	}

	if strings.TrimSpace(rec.Flower) == "" || strings.TrimSpace(rec.Meaning) == "" {
		return Record{}, false
	}
	return rec, true
}
