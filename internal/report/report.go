// Package report composes the console report from the computed
// aggregates. It is a pure formatting layer: the only arithmetic here is
// percentage division, guarded for empty datasets.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/medtextlab/corpuseda/internal/dataset"
	"github.com/medtextlab/corpuseda/internal/stats"
	"github.com/medtextlab/corpuseda/internal/textfreq"
)

// Assembler writes the sectioned human-readable report.
type Assembler struct {
	w       io.Writer
	RunID   string
	section int

	// SampleRows caps how many data rows the head section prints.
	SampleRows int
	// TopWords caps the frequency tables.
	TopWords int
}

// New returns an Assembler writing to w with a fresh run ID.
func New(w io.Writer) *Assembler {
	return &Assembler{w: w, RunID: uuid.NewString(), SampleRows: 5, TopWords: 20}
}

func (a *Assembler) printf(format string, args ...any) {
	fmt.Fprintf(a.w, format, args...)
}

func (a *Assembler) banner(title string) {
	a.printf("%s\n%s\n%s\n", strings.Repeat("=", 60), title, strings.Repeat("=", 60))
}

func (a *Assembler) sectionHeader(title string) {
	a.section++
	a.printf("\n%d. %s\n%s\n", a.section, strings.ToUpper(title), strings.Repeat("-", 40))
}

// Header opens the report.
func (a *Assembler) Header(datasetName string) {
	a.banner("EXPLORATORY DATA ANALYSIS")
	a.printf("Dataset: %s\n", datasetName)
	a.printf("Run ID: %s\n", a.RunID)
}

// DatasetOverview covers shape, columns, sample rows, missing values and
// duplicate rows.
func (a *Assembler) DatasetOverview(ds *dataset.Dataset, sum *stats.Summary) {
	a.sectionHeader("Basic dataset information")
	a.printf("Dataset shape: (%d, %d)\n", sum.Rows, sum.Columns)
	a.printf("Number of rows: %d\n", sum.Rows)
	a.printf("Number of columns: %d\n", sum.Columns)

	a.sectionHeader("Column information")
	a.printf("Columns: %s\n", strings.Join(ds.Columns(), ", "))

	a.sectionHeader("First few rows")
	n := a.SampleRows
	if ds.Len() < n {
		n = ds.Len()
	}
	for i := 0; i < n; i++ {
		r := ds.Records[i]
		a.printf("  [%d] pmid=%s source=%s group=%s title=%s\n",
			i, orDash(r.PMID), orDash(r.Source), orDash(r.Group), clip(r.Title, 60))
	}
	if n == 0 {
		a.printf("  (no rows)\n")
	}

	a.sectionHeader("Missing values")
	for _, m := range sum.Missing {
		a.printf("  %-10s %d\n", m.Column, m.Count)
	}

	a.sectionHeader("Duplicate rows")
	a.printf("Number of duplicate rows: %d\n", sum.DuplicateRows)
}

// TextColumns reports the length and word-count statistics.
func (a *Assembler) TextColumns(sum *stats.Summary) {
	a.sectionHeader("Text analysis")
	a.printf("\nTITLE ANALYSIS:\n")
	a.numStats(sum.TitleLength, "title length", "characters")
	a.printf("\nABSTRACT ANALYSIS:\n")
	a.numStats(sum.AbstractLength, "abstract length", "characters")
	a.printf("\nAverage title word count: %.2f\n", sum.TitleWords.Mean)
	a.printf("Average abstract word count: %.2f\n", sum.AbstractWords.Mean)
}

func (a *Assembler) numStats(s stats.NumStats, label, unit string) {
	a.printf("Average %s: %.2f %s\n", label, s.Mean, unit)
	a.printf("Min %s: %.0f %s\n", label, s.Min, unit)
	a.printf("Max %s: %.0f %s\n", label, s.Max, unit)
	a.printf("%s std: %.2f\n", strings.ToUpper(label[:1])+label[1:], s.Std)
}

// Categoricals reports the source, group and Manual distributions.
func (a *Assembler) Categoricals(sum *stats.Summary) {
	a.sectionHeader("Categorical variables analysis")
	for _, d := range []stats.Distribution{sum.Source, sum.Group, sum.Manual} {
		a.printf("\n%s DISTRIBUTION:\n", strings.ToUpper(d.Column))
		for _, c := range d.Counts {
			a.printf("  %-24s %d\n", c.Value, c.Count)
		}
		a.printf("Number of unique %s values: %d\n", d.Column, d.Distinct)
	}
}

// Identifiers reports the pmid analysis.
func (a *Assembler) Identifiers(sum *stats.Summary) {
	a.sectionHeader("PMID analysis")
	a.printf("Number of unique PMIDs: %d\n", sum.PMIDDistinct)
	a.printf("Total rows: %d\n", sum.Rows)
	a.printf("Duplicate PMIDs: %d\n", sum.PMIDDuplicates)
	a.printf("Missing PMIDs: %d\n", sum.PMIDMissing)
}

// Frequencies reports the raw and filtered top-word tables.
func (a *Assembler) Frequencies(res textfreq.Result) {
	a.sectionHeader("Detailed text analysis")
	a.printf("Total characters in dataset: %d\n", res.TotalChars)
	a.printf("Total words in dataset: %d\n", res.TotalWords)

	a.printf("\nMost common words (top %d):\n", a.TopWords)
	a.freqTable(res.Raw)
	a.printf("\nMost common meaningful words (top %d):\n", a.TopWords)
	a.freqTable(res.Filtered)
}

func (a *Assembler) freqTable(c *textfreq.Counts) {
	entries := c.Top(a.TopWords)
	if len(entries) == 0 {
		a.printf("  (none)\n")
		return
	}
	for _, e := range entries {
		a.printf("  %s: %d\n", e.Token, e.Count)
	}
}

// StatisticalSummary reports the derived-column describe block and the
// title/abstract length correlation.
func (a *Assembler) StatisticalSummary(sum *stats.Summary) {
	a.sectionHeader("Statistical summary")
	a.printf("Numerical columns summary:\n")
	a.printf("  %-20s %8s %10s %8s %8s %10s\n", "column", "count", "mean", "min", "max", "std")
	for _, row := range []struct {
		name string
		s    stats.NumStats
	}{
		{"title_length", sum.TitleLength},
		{"abstract_length", sum.AbstractLength},
		{"title_word_count", sum.TitleWords},
		{"abstract_word_count", sum.AbstractWords},
	} {
		a.printf("  %-20s %8d %10.2f %8.0f %8.0f %10.2f\n",
			row.name, row.s.Count, row.s.Mean, row.s.Min, row.s.Max, row.s.Std)
	}
	a.printf("\nCorrelation between text lengths:\n")
	a.printf("Title length vs Abstract length correlation: %.4f\n", sum.LengthCorrelation)
}

// Overview writes the comprehensive closing summary with per-category
// percentages and data-quality counts.
func (a *Assembler) Overview(sum *stats.Summary) {
	a.sectionHeader("Comprehensive summary report")

	a.printf("\nDATASET OVERVIEW:\n")
	a.printf("- Total records: %d\n", sum.Rows)
	a.printf("- Unique PMIDs: %d\n", sum.PMIDDistinct)
	a.printf("- Duplicate PMIDs: %d\n", sum.PMIDDuplicates)
	a.printf("- Sources: %d\n", sum.Source.Distinct)
	a.printf("- Medical groups: %d\n", sum.Group.Distinct)

	a.printf("\nTEXT CHARACTERISTICS:\n")
	a.printf("- Average title length: %.1f characters\n", sum.TitleLength.Mean)
	a.printf("- Average abstract length: %.1f characters\n", sum.AbstractLength.Mean)
	a.printf("- Average title words: %.1f\n", sum.TitleWords.Mean)
	a.printf("- Average abstract words: %.1f\n", sum.AbstractWords.Mean)

	a.printf("\nSOURCE BREAKDOWN:\n")
	for _, c := range sum.Source.Counts {
		a.printf("- %s: %d records (%.1f%%)\n", c.Value, c.Count, percent(c.Count, sum.Rows))
	}

	a.printf("\nTOP MEDICAL GROUPS:\n")
	for _, c := range sum.Group.Top(10) {
		a.printf("- %s: %d records (%.1f%%)\n", c.Value, c.Count, percent(c.Count, sum.Rows))
	}

	a.printf("\nDATA QUALITY:\n")
	for _, m := range sum.Missing {
		a.printf("- Missing %s: %d\n", m.Column, m.Count)
	}
}

// Footer closes the report, listing generated artifacts.
func (a *Assembler) Footer(artifacts []string) {
	a.printf("\n")
	a.banner("EDA COMPLETED SUCCESSFULLY")
	if len(artifacts) > 0 {
		a.printf("\nGenerated files:\n")
		for _, f := range artifacts {
			a.printf("- %s\n", f)
		}
	}
}

// percent returns 0 for an empty total instead of dividing by zero.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
