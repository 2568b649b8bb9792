package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cfgpkg "github.com/medtextlab/corpuseda/internal/config"
	"github.com/medtextlab/corpuseda/internal/dataset"
	"github.com/medtextlab/corpuseda/internal/render"
)

func defaultTestConfig() *cfgpkg.Global {
	return &cfgpkg.Global{
		Delimiter:         ";",
		AnalysisVariant:   cfgpkg.VariantFull,
		TopWords:          20,
		MinWordLen:        3,
		SampleRows:        5,
		OutDir:            ".",
		Charts:            true,
		WordCloudMaxWords: 100,
	}
}

func writeDataset(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "articles.csv")
	rows := strings.Join([]string{
		"pmid;title;abstract;source;group;Manual",
		"101;Aspirin and stroke;Large trial of aspirin use in adults.;pubmed;cardiology;yes",
		"102;Liver enzymes;Enzyme levels in cirrhosis patients.;embase;hepatology;no",
	}, "\n")
	if err := os.WriteFile(p, []byte(rows), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return p
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg = defaultTestConfig()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestProfileCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCommand(t, "profile", writeDataset(t), "--out-dir", dir)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	for _, want := range []string{
		"EXPLORATORY DATA ANALYSIS",
		"Number of rows: 2",
		"Most common meaningful words",
		"aspirin: 2",
		"EDA COMPLETED SUCCESSFULLY",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("profile output missing %q\n%s", want, out)
		}
	}
	for _, f := range []string{render.ChartsFile, render.WordCloudFile} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("artifact %s not written: %v", f, err)
		}
	}
}

func TestProfileLiteVariantSkipsWordCloud(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "profile", writeDataset(t), "--variant", "lite", "--out-dir", dir)
	if err != nil {
		t.Fatalf("profile lite: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, render.ChartsFile)); err != nil {
		t.Errorf("charts not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, render.WordCloudFile)); err == nil {
		t.Error("lite variant should not write a word cloud")
	}
}

func TestProfileNoCharts(t *testing.T) {
	dir := t.TempDir()
	out, err := runCommand(t, "profile", writeDataset(t), "--no-charts", "--out-dir", dir)
	if err != nil {
		t.Fatalf("profile --no-charts: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, render.ChartsFile)); statErr == nil {
		t.Error("--no-charts still wrote the chart grid")
	}
	if !strings.Contains(out, "EDA COMPLETED SUCCESSFULLY") {
		t.Errorf("report missing completion banner:\n%s", out)
	}
}

func TestWordsCommand(t *testing.T) {
	out, err := runCommand(t, "words", writeDataset(t), "--top", "5")
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if !strings.Contains(out, "Most common words (top 5):") {
		t.Errorf("words output missing raw table header:\n%s", out)
	}
	if !strings.Contains(out, "aspirin: 2") {
		t.Errorf("words output missing expected count:\n%s", out)
	}
}

func TestProfileMissingInput(t *testing.T) {
	_, err := runCommand(t, "profile", filepath.Join(t.TempDir(), "absent.csv"), "--no-charts")
	if !errors.Is(err, dataset.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrap: %w", dataset.ErrNotFound), exitInput},
		{fmt.Errorf("wrap: %w", dataset.ErrSchema), exitSchema},
		{fmt.Errorf("wrap: %w", render.ErrRender), exitRender},
		{errors.New("anything else"), exitGeneric},
	}
	for _, c := range cases {
		if got := exitCode(c.err); got != c.want {
			t.Errorf("exitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestParseDelimiter(t *testing.T) {
	cases := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", ';', false},
		{";", ';', false},
		{",", ',', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"|", 0, true},
	}
	for _, c := range cases {
		got, err := parseDelimiter(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("parseDelimiter(%q) err = %v, wantErr %t", c.in, err, c.wantErr)
			continue
		}
		if !c.wantErr && got != c.want {
			t.Errorf("parseDelimiter(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
