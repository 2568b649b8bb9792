// Package stats computes the descriptive statistics reported for a
// loaded dataset: shape, missing values, duplicates, per-text-column
// length and word-count summaries, categorical distributions, and the
// identifier analysis.
package stats

import (
	"math"
	"sort"

	"github.com/medtextlab/corpuseda/internal/dataset"
)

// NumStats summarizes one numeric derived column.
type NumStats struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
	Std   float64 // sample standard deviation
}

// CategoryCount is one distinct value with its record count.
type CategoryCount struct {
	Value string
	Count int
}

// Distribution summarizes one categorical column. Counts always sum to
// the row count; empty cells are counted under the "(missing)" value.
type Distribution struct {
	Column   string
	Counts   []CategoryCount
	Distinct int
}

// ColumnMissing is the missing-cell count for one column.
type ColumnMissing struct {
	Column string
	Count  int
}

// Summary is the full read-only statistics view over a dataset.
type Summary struct {
	Rows    int
	Columns int

	Missing       []ColumnMissing
	DuplicateRows int

	TitleLength    NumStats
	AbstractLength NumStats
	TitleWords     NumStats
	AbstractWords  NumStats

	Source Distribution
	Group  Distribution
	Manual Distribution

	PMIDDistinct   int
	PMIDDuplicates int
	PMIDMissing    int

	// Pearson correlation between title and abstract character lengths.
	LengthCorrelation float64
}

// MissingLabel stands in for empty cells in categorical distributions.
const MissingLabel = "(missing)"

// welford accumulates mean and variance in one pass.
type welford struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

func newWelford() welford {
	return welford{min: math.Inf(1), max: math.Inf(-1)}
}

func (w *welford) add(x float64) {
	w.n++
	if x < w.min {
		w.min = x
	}
	if x > w.max {
		w.max = x
	}
	delta := x - w.mean
	w.mean += delta / float64(w.n)
	w.m2 += delta * (x - w.mean)
}

func (w *welford) summary() NumStats {
	if w.n == 0 {
		return NumStats{}
	}
	s := NumStats{Count: w.n, Mean: w.mean, Min: w.min, Max: w.max}
	if w.n > 1 {
		s.Std = math.Sqrt(w.m2 / float64(w.n-1))
	}
	return s
}

// Summarize computes the full Summary. It attaches the derived columns
// to ds if they are not present yet; everything else is read-only.
// An empty dataset yields all-zero statistics.
func Summarize(ds *dataset.Dataset) *Summary {
	if !ds.HasDerived() {
		ds.AttachDerived()
	}

	sum := &Summary{Rows: ds.Len(), Columns: len(ds.Columns())}

	titleLen := newWelford()
	absLen := newWelford()
	titleWords := newWelford()
	absWords := newWelford()

	missing := map[string]int{}
	source := map[string]int{}
	group := map[string]int{}
	manual := map[string]int{}
	pmids := map[string]struct{}{}
	rowSeen := map[string]struct{}{}

	// Pairwise correlation accumulator over (title length, abstract length).
	var cn, cx, cy, cxx, cyy, cxy float64

	for i := range ds.Records {
		r := &ds.Records[i]
		for _, cell := range []struct {
			col string
			val string
		}{
			{"pmid", r.PMID}, {"title", r.Title}, {"abstract", r.Abstract},
			{"source", r.Source}, {"group", r.Group}, {"Manual", r.Manual},
		} {
			if cell.val == "" {
				missing[cell.col]++
			}
		}

		titleLen.add(float64(r.TitleLength))
		absLen.add(float64(r.AbstractLength))
		titleWords.add(float64(r.TitleWordCount))
		absWords.add(float64(r.AbstractWordCount))

		x, y := float64(r.TitleLength), float64(r.AbstractLength)
		cn++
		cx += x
		cy += y
		cxx += x * x
		cyy += y * y
		cxy += x * y

		source[categoryValue(r.Source)]++
		group[categoryValue(r.Group)]++
		manual[categoryValue(r.Manual)]++

		if r.PMID == "" {
			sum.PMIDMissing++
		} else {
			pmids[r.PMID] = struct{}{}
		}
		rowSeen[ds.RowKey(i)] = struct{}{}
	}

	sum.Missing = make([]ColumnMissing, 0, len(dataset.RequiredColumns))
	for _, col := range dataset.RequiredColumns {
		sum.Missing = append(sum.Missing, ColumnMissing{Column: col, Count: missing[col]})
	}
	sum.DuplicateRows = ds.Len() - len(rowSeen)

	sum.TitleLength = titleLen.summary()
	sum.AbstractLength = absLen.summary()
	sum.TitleWords = titleWords.summary()
	sum.AbstractWords = absWords.summary()

	sum.Source = distribution("source", source)
	sum.Group = distribution("group", group)
	sum.Manual = distribution("Manual", manual)

	// Duplicates defined as rows minus distinct non-missing identifiers,
	// so distinct + duplicates always equals the row count.
	sum.PMIDDistinct = len(pmids)
	sum.PMIDDuplicates = ds.Len() - sum.PMIDDistinct

	if denom := math.Sqrt((cn*cxx - cx*cx) * (cn*cyy - cy*cy)); denom != 0 {
		r := (cn*cxy - cx*cy) / denom
		if r > 1 {
			r = 1
		} else if r < -1 {
			r = -1
		}
		if !math.IsNaN(r) && !math.IsInf(r, 0) {
			sum.LengthCorrelation = r
		}
	}
	return sum
}

func categoryValue(v string) string {
	if v == "" {
		return MissingLabel
	}
	return v
}

// distribution sorts distinct values by count descending, value
// ascending on ties, matching the deterministic ordering used elsewhere.
func distribution(column string, counts map[string]int) Distribution {
	out := make([]CategoryCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, CategoryCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	return Distribution{Column: column, Counts: out, Distinct: len(out)}
}

// Top returns the first n categories of d (fewer if d is smaller).
func (d Distribution) Top(n int) []CategoryCount {
	if len(d.Counts) < n {
		n = len(d.Counts)
	}
	return d.Counts[:n]
}

// Total returns the sum of all category counts.
func (d Distribution) Total() int {
	t := 0
	for _, c := range d.Counts {
		t += c.Count
	}
	return t
}
