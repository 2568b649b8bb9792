package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var fixtureRows = []string{
	"pmid;title;abstract;source;group;Manual",
	"101;Aspirin and stroke;Large trial of aspirin use.;pubmed;cardiology;yes",
	"102;Liver enzymes;Enzyme levels in cirrhosis patients.;embase;hepatology;",
	"101;Aspirin and stroke;Large trial of aspirin use.;pubmed;cardiology;yes",
	";Missing identifier;Short abstract.;pubmed;cardiology;no",
}

func writeFixture(t *testing.T, rows []string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "articles.csv")
	if err := os.WriteFile(p, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestLoad(t *testing.T) {
	ds, err := Load(writeFixture(t, fixtureRows), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 4 {
		t.Fatalf("Len = %d, want 4", ds.Len())
	}
	if got := len(ds.Columns()); got != 6 {
		t.Fatalf("Columns = %d, want 6", got)
	}
	r := ds.Records[0]
	if r.PMID != "101" || r.Source != "pubmed" || r.Group != "cardiology" || r.Manual != "yes" {
		t.Fatalf("unexpected first record: %+v", r)
	}
	if ds.Records[3].PMID != "" {
		t.Fatalf("expected missing pmid in last row, got %q", ds.Records[3].PMID)
	}
	// Exact duplicate rows share a row key.
	if ds.RowKey(0) != ds.RowKey(2) {
		t.Error("duplicate rows should produce identical row keys")
	}
	if ds.RowKey(0) == ds.RowKey(1) {
		t.Error("distinct rows should produce distinct row keys")
	}
}

func TestLoadColumnOrderIndependent(t *testing.T) {
	rows := []string{
		"title;Manual;pmid;group;source;abstract",
		"Aspirin and stroke;yes;101;cardiology;pubmed;Large trial.",
	}
	ds, err := Load(writeFixture(t, rows), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := ds.Records[0]
	if r.PMID != "101" || r.Title != "Aspirin and stroke" || r.Abstract != "Large trial." {
		t.Fatalf("column mapping broken: %+v", r)
	}
}

func TestLoadShortRowPadded(t *testing.T) {
	rows := []string{
		"pmid;title;abstract;source;group;Manual",
		"101;Only a title",
	}
	ds, err := Load(writeFixture(t, rows), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r := ds.Records[0]; r.Abstract != "" || r.Manual != "" {
		t.Fatalf("short row not padded: %+v", r)
	}
}

func TestLoadSchemaMismatch(t *testing.T) {
	rows := []string{
		"pmid;title;text;source;group;manual", // wrong case + wrong name
		"101;Aspirin;x;pubmed;cardiology;yes",
	}
	_, err := Load(writeFixture(t, rows), 0)
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "abstract") || !strings.Contains(err.Error(), "Manual") {
		t.Fatalf("schema error should name missing columns, got %v", err)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAttachDerived(t *testing.T) {
	ds, err := Load(writeFixture(t, fixtureRows), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ds.AttachDerived()
	if !ds.HasDerived() {
		t.Fatal("HasDerived = false after AttachDerived")
	}
	r := ds.Records[0]
	if r.TitleLength != len("Aspirin and stroke") {
		t.Errorf("TitleLength = %d, want %d", r.TitleLength, len("Aspirin and stroke"))
	}
	if r.TitleWordCount != 3 {
		t.Errorf("TitleWordCount = %d, want 3", r.TitleWordCount)
	}
	if r.AbstractWordCount != 5 {
		t.Errorf("AbstractWordCount = %d, want 5", r.AbstractWordCount)
	}
}

func TestCorpus(t *testing.T) {
	ds, err := Read(strings.NewReader(strings.Join([]string{
		"pmid;title;abstract;source;group;Manual",
		"1;alpha;beta;s;g;m",
		"2;gamma;delta;s;g;m",
	}, "\n")), "mini.csv", ';')
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got, want := ds.Corpus(), "alpha beta gamma delta"; got != want {
		t.Fatalf("Corpus = %q, want %q", got, want)
	}
}

func TestCorpusEmpty(t *testing.T) {
	ds := &Dataset{}
	if ds.Corpus() != "" {
		t.Fatal("empty dataset should produce an empty corpus")
	}
}
