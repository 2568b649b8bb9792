package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// RequiredColumns are the header names the loader validates up front.
// Order in the file does not matter; names are matched exactly,
// case-sensitive ("Manual" is capitalized in the source data).
var RequiredColumns = []string{"pmid", "title", "abstract", "source", "group", "Manual"}

var (
	// ErrNotFound marks a missing or unreadable input file.
	ErrNotFound = errors.New("input file not found")
	// ErrSchema marks a header that lacks one or more required columns.
	ErrSchema = errors.New("schema mismatch")
)

// Load reads a delimited dataset from path. delim selects the field
// separator; 0 means the default ';'. Rows shorter than the header are
// padded with empty cells rather than rejected.
func Load(path string, delim rune) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f, filepath.Base(path), delim)
}

// Read parses a dataset from r. name labels the dataset in reports.
func Read(r io.Reader, name string, delim rune) (*Dataset, error) {
	if delim == 0 {
		delim = ';'
	}
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s has no header row", ErrSchema, name)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s is missing column(s) %s", ErrSchema, name, strings.Join(missing, ", "))
	}

	ds := &Dataset{Name: name, header: header}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", ds.Len()+1, err)
		}
		if len(rec) < len(header) {
			tmp := make([]string, len(header))
			copy(tmp, rec)
			rec = tmp
		}
		cell := func(name string) string { return strings.TrimSpace(rec[idx[name]]) }
		ds.Records = append(ds.Records, Record{
			PMID:     cell("pmid"),
			Title:    cell("title"),
			Abstract: cell("abstract"),
			Source:   cell("source"),
			Group:    cell("group"),
			Manual:   cell("Manual"),
			rawKey:   strings.Join(rec, "\x1f"),
		})
	}
	return ds, nil
}
