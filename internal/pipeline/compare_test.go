package pipeline

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/enova-tools/hrexport/internal/textfile"
)

func writeUTF8Fixture(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompare_ReportsDifferences(t *testing.T) {
	dir := t.TempDir()
	first := writeUTF8Fixture(t, dir, "stary.txt",
		"Kod\tNazwisko\tImie\tDział\tZatrudnienie\n"+
			"001\tNowak\tJan\tIT\tDeveloper\n"+
			"002\tKowalska\tAnna\tKsięgowość\tManager\n")
	second := writeUTF8Fixture(t, dir, "nowy.txt",
		"Kod\tNazwisko\tImie\tDział\tZatrudnienie\n"+
			"001\tNowak\tJan\tIT\tSenior Developer\n"+
			"003\tWiśniewski\tPiotr\tIT\tTester\n")

	res, err := Compare(testConfig(t), testLogger(), io.Discard, CompareOptions{
		First:  first,
		Second: second,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	d := res.Diff
	if len(d.UniqueToFirst) != 1 || d.UniqueToFirst[0].Code != "002" {
		t.Errorf("UniqueToFirst = %v, want single entry 002", d.UniqueToFirst)
	}
	if len(d.UniqueToSecond) != 1 || d.UniqueToSecond[0].Code != "003" {
		t.Errorf("UniqueToSecond = %v, want single entry 003", d.UniqueToSecond)
	}
	if len(d.Modified) != 1 || d.Modified[0].Code != "001" {
		t.Errorf("Modified = %v, want single entry 001", d.Modified)
	}
}

func TestCompare_IdenticalFiles(t *testing.T) {
	dir := t.TempDir()
	content := "Kod\tNazwisko\tImie\tDział\tZatrudnienie\n001\tNowak\tJan\tIT\tDeveloper\n"
	first := writeUTF8Fixture(t, dir, "a.txt", content)
	second := writeUTF8Fixture(t, dir, "b.txt", content)

	res, err := Compare(testConfig(t), testLogger(), io.Discard, CompareOptions{
		First:  first,
		Second: second,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !res.Diff.Empty() {
		t.Errorf("Diff = %+v, want empty", res.Diff)
	}
}

func TestCompare_MixedEncodings(t *testing.T) {
	// One UTF-8 file and one UTF-16 file; detection is per file.
	dir := t.TempDir()
	first := writeUTF8Fixture(t, dir, "a.txt",
		"Kod\tNazwisko\tImie\tDział\tZatrudnienie\n001\tNowak\tJan\tIT\tDeveloper\n")
	second := writeUTF16Fixture(t, dir, "b.txt",
		"Kod\tNazwisko\tImie\tDział\tZatrudnienie\n001\tNowak\tJan\tIT\tDeveloper\n")

	res, err := Compare(testConfig(t), testLogger(), io.Discard, CompareOptions{
		First:  first,
		Second: second,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !res.Diff.Empty() {
		t.Errorf("Diff = %+v, want empty (same data in both encodings)", res.Diff)
	}
}

func TestCompare_SkippedLinesCollected(t *testing.T) {
	dir := t.TempDir()
	first := writeUTF8Fixture(t, dir, "a.txt",
		"Kod\tNazwisko\tImie\tDział\tZatrudnienie\n"+
			"uszkodzony wiersz\n"+
			"001\tNowak\tJan\tIT\tDeveloper\n")
	second := writeUTF8Fixture(t, dir, "b.txt",
		"001\tNowak\tJan\tIT\tDeveloper\n")

	res, err := Compare(testConfig(t), testLogger(), io.Discard, CompareOptions{
		First:  first,
		Second: second,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(res.FirstSkipped) != 1 {
		t.Errorf("len(FirstSkipped) = %d, want 1", len(res.FirstSkipped))
	}
	if len(res.SecondSkipped) != 0 {
		t.Errorf("len(SecondSkipped) = %d, want 0", len(res.SecondSkipped))
	}
}

func TestCompare_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	first := writeUTF8Fixture(t, dir, "a.txt", "001\tNowak\tJan\tIT\tDeveloper\n")

	_, err := Compare(testConfig(t), testLogger(), io.Discard, CompareOptions{
		First:  first,
		Second: filepath.Join(dir, "nope.txt"),
	})
	if !errors.Is(err, textfile.ErrMissing) {
		t.Errorf("Compare with missing file = %v, want ErrMissing", err)
	}
}

func TestCompare_TablesOnlyWhenNonEmpty(t *testing.T) {
	dir := t.TempDir()
	content := "001\tNowak\tJan\tKsięgowość\tDeveloper\n"
	first := writeUTF8Fixture(t, dir, "a.txt", content)
	second := writeUTF8Fixture(t, dir, "b.txt", content)

	var buf bytes.Buffer
	if _, err := Compare(testConfig(t), testLogger(), &buf, CompareOptions{
		First: first, Second: second, ShowTables: true,
	}); err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("identical files produced table output: %q", buf.String())
	}
}

func TestCompare_TableTitlesAndFlag(t *testing.T) {
	dir := t.TempDir()
	first := writeUTF8Fixture(t, dir, "a.txt",
		"001\tNowak\tJan\tIT\tDeveloper\n002\tKowalska\tAnna\tDział Płac\tManager\n")
	second := writeUTF8Fixture(t, dir, "b.txt",
		"001\tNowak\tJan\tIT\tManager\n")

	var buf bytes.Buffer
	if _, err := Compare(testConfig(t), testLogger(), &buf, CompareOptions{
		First: first, Second: second, ShowTables: true,
	}); err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Rows unique to file 1") {
		t.Errorf("missing unique-to-file-1 table: %q", out)
	}
	if strings.Contains(out, "Rows unique to file 2") {
		t.Errorf("unexpected unique-to-file-2 table: %q", out)
	}
	if !strings.Contains(out, "Modified rows") {
		t.Errorf("missing modified table: %q", out)
	}
	if !strings.Contains(out, "is_active") {
		t.Errorf("missing is_active column: %q", out)
	}
}
