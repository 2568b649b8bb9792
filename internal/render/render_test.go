package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/medtextlab/corpuseda/internal/dataset"
	"github.com/medtextlab/corpuseda/internal/stats"
	"github.com/medtextlab/corpuseda/internal/textfreq"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func mustRead(t *testing.T, rows []string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Read(strings.NewReader(strings.Join(rows, "\n")), "fixture.csv", ';')
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return ds
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.HasPrefix(b, pngSignature) {
		t.Fatalf("%s is not a PNG (starts with % x)", filepath.Base(path), b[:minInt(8, len(b))])
	}
	if _, err := os.Stat(path + ".tmp"); err == nil {
		t.Fatalf("temp file left behind next to %s", path)
	}
}

func TestCharts(t *testing.T) {
	ds := mustRead(t, []string{
		"pmid;title;abstract;source;group;Manual",
		"1;Aspirin and stroke;Large trial of aspirin use in adults.;pubmed;cardiology;yes",
		"2;Liver enzymes;Enzyme levels in cirrhosis patients over time.;embase;hepatology;no",
		"3;Renal outcomes;Kidney function after contrast imaging.;pubmed;nephrology;no",
	})
	sum := stats.Summarize(ds)

	dir := t.TempDir()
	path, err := Charts(ds, sum, dir)
	if err != nil {
		t.Fatalf("Charts: %v", err)
	}
	if filepath.Base(path) != ChartsFile {
		t.Fatalf("unexpected artifact name: %s", path)
	}
	assertPNG(t, path)
}

func TestChartsEmptyDataset(t *testing.T) {
	ds := mustRead(t, []string{"pmid;title;abstract;source;group;Manual"})
	sum := stats.Summarize(ds)

	path, err := Charts(ds, sum, t.TempDir())
	if err != nil {
		t.Fatalf("Charts on empty dataset: %v", err)
	}
	assertPNG(t, path)
}

func TestChartsTiedCategoryCounts(t *testing.T) {
	// Every group and source appears exactly once, so all bar values are
	// equal; the bar panels must still render instead of failing on a
	// zero-span value range.
	ds := mustRead(t, []string{
		"pmid;title;abstract;source;group;Manual",
		"1;Aspirin;Trial of aspirin.;pubmed;cardiology;yes",
		"2;Enzymes;Enzyme study.;embase;hepatology;no",
		"3;Kidneys;Kidney imaging.;scopus;nephrology;no",
	})
	sum := stats.Summarize(ds)

	path, err := Charts(ds, sum, t.TempDir())
	if err != nil {
		t.Fatalf("Charts with uniform counts: %v", err)
	}
	assertPNG(t, path)
}

func TestChartsOverwrites(t *testing.T) {
	ds := mustRead(t, []string{
		"pmid;title;abstract;source;group;Manual",
		"1;Aspirin;Trial of aspirin.;pubmed;cardiology;yes",
	})
	sum := stats.Summarize(ds)
	dir := t.TempDir()
	stale := filepath.Join(dir, ChartsFile)
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}
	if _, err := Charts(ds, sum, dir); err != nil {
		t.Fatalf("Charts: %v", err)
	}
	assertPNG(t, stale)
}

func TestWordCloud(t *testing.T) {
	entries := []textfreq.Entry{
		{Token: "aspirin", Count: 12},
		{Token: "stroke", Count: 8},
		{Token: "trial", Count: 5},
		{Token: "kidney", Count: 2},
	}
	path, err := WordCloud(entries, t.TempDir())
	if err != nil {
		t.Fatalf("WordCloud: %v", err)
	}
	if filepath.Base(path) != WordCloudFile {
		t.Fatalf("unexpected artifact name: %s", path)
	}
	assertPNG(t, path)
}

func TestWordCloudEmpty(t *testing.T) {
	path, err := WordCloud(nil, t.TempDir())
	if err != nil {
		t.Fatalf("WordCloud on empty input: %v", err)
	}
	assertPNG(t, path)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
