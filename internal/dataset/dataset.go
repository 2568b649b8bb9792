// Package dataset loads the semicolon-delimited article dataset into an
// in-memory model and attaches derived per-record columns used by the
// statistics and rendering stages.
package dataset

import (
	"strings"
	"unicode/utf8"
)

// Record is one article row. PMIDs may be missing or duplicated; the
// loader never rejects a row for that, duplicates are counted downstream.
type Record struct {
	PMID     string
	Title    string
	Abstract string
	Source   string
	Group    string
	Manual   string

	// Derived columns, populated by Dataset.AttachDerived.
	TitleLength       int
	AbstractLength    int
	TitleWordCount    int
	AbstractWordCount int

	// Full original row joined with a field separator, for exact
	// duplicate-row detection across all columns.
	rawKey string
}

// Dataset is an ordered collection of records as read from one file.
type Dataset struct {
	Name    string
	Records []Record

	header  []string
	derived bool
}

// Len returns the number of data rows.
func (d *Dataset) Len() int { return len(d.Records) }

// Columns returns the header columns in file order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.header))
	copy(out, d.header)
	return out
}

// RowKey returns the full original row i as a single comparable string.
func (d *Dataset) RowKey(i int) string { return d.Records[i].rawKey }

// HasDerived reports whether AttachDerived has run.
func (d *Dataset) HasDerived() bool { return d.derived }

// AttachDerived computes and caches the four derived columns
// (title_length, abstract_length, title_word_count, abstract_word_count)
// on every record. Lengths are rune counts; word counts split on
// whitespace. Safe to call more than once.
func (d *Dataset) AttachDerived() {
	for i := range d.Records {
		r := &d.Records[i]
		r.TitleLength = utf8.RuneCountInString(r.Title)
		r.AbstractLength = utf8.RuneCountInString(r.Abstract)
		r.TitleWordCount = len(strings.Fields(r.Title))
		r.AbstractWordCount = len(strings.Fields(r.Abstract))
	}
	d.derived = true
}

// Corpus concatenates title and abstract of every record, separated by
// single spaces, in row order. This is the input to the frequency pipeline.
func (d *Dataset) Corpus() string {
	var b strings.Builder
	for i, r := range d.Records {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.Title)
		b.WriteByte(' ')
		b.WriteString(r.Abstract)
	}
	return b.String()
}
