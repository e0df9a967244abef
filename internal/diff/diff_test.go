package diff

import (
	"sort"
	"testing"

	"github.com/enova-tools/hrexport/internal/row"
)

func values(a, b, c, d string) row.FieldValues {
	return row.FieldValues{a, b, c, d}
}

func TestCompare_ModifiedRow(t *testing.T) {
	first := row.RecordSet{"001": values("Nowak", "Jan", "IT", "Dev")}
	second := row.RecordSet{"001": values("Nowak", "Jan", "IT", "Manager")}

	res := Compare(first, second)

	if len(res.UniqueToFirst) != 0 || len(res.UniqueToSecond) != 0 {
		t.Errorf("unique collections = %d/%d, want 0/0",
			len(res.UniqueToFirst), len(res.UniqueToSecond))
	}
	if len(res.Modified) != 1 {
		t.Fatalf("len(Modified) = %d, want 1", len(res.Modified))
	}

	got := res.Modified[0]
	if got.Code != "001" {
		t.Errorf("Code = %q, want %q", got.Code, "001")
	}
	// The first file's version is the representative.
	if got.Values != values("Nowak", "Jan", "IT", "Dev") {
		t.Errorf("Values = %v, want first file's values", got.Values)
	}
	if !got.Active {
		t.Error("Active = false, want true for modified rows")
	}
}

func TestCompare_UniqueRows(t *testing.T) {
	first := row.RecordSet{
		"001": values("Nowak", "Jan", "IT", "Dev"),
		"002": values("Kowalska", "Anna", "HR", "Manager"),
	}
	second := row.RecordSet{
		"001": values("Nowak", "Jan", "IT", "Dev"),
		"003": values("Wiśniewski", "Piotr", "IT", "Tester"),
	}

	res := Compare(first, second)

	if len(res.UniqueToFirst) != 1 || res.UniqueToFirst[0].Code != "002" {
		t.Errorf("UniqueToFirst = %v, want single entry 002", res.UniqueToFirst)
	}
	if res.UniqueToFirst[0].Active {
		t.Error("UniqueToFirst Active = true, want false")
	}

	if len(res.UniqueToSecond) != 1 || res.UniqueToSecond[0].Code != "003" {
		t.Errorf("UniqueToSecond = %v, want single entry 003", res.UniqueToSecond)
	}
	if !res.UniqueToSecond[0].Active {
		t.Error("UniqueToSecond Active = false, want true")
	}

	if len(res.Modified) != 0 {
		t.Errorf("len(Modified) = %d, want 0", len(res.Modified))
	}
}

func TestCompare_IdenticalSetsEmpty(t *testing.T) {
	set := row.RecordSet{
		"001": values("Nowak", "Jan", "IT", "Dev"),
		"002": values("Kowalska", "Anna", "HR", "Manager"),
	}

	res := Compare(set, set)

	if !res.Empty() {
		t.Errorf("Compare(set, set) = %+v, want empty result", res)
	}
}

func TestCompare_ExactEquality(t *testing.T) {
	// Whitespace and case differences are real differences; no
	// normalization happens past the initial parse.
	first := row.RecordSet{"001": values("Nowak", "Jan", "IT", "Dev")}
	second := row.RecordSet{"001": values("Nowak", "Jan", "it", "Dev ")}

	res := Compare(first, second)

	if len(res.Modified) != 1 {
		t.Errorf("len(Modified) = %d, want 1", len(res.Modified))
	}
}

func TestCompare_CollectionsDisjointAndCovering(t *testing.T) {
	first := row.RecordSet{
		"001": values("a", "b", "c", "d"),
		"002": values("a", "b", "c", "d"),
		"003": values("a", "b", "c", "d"),
		"005": values("x", "y", "z", "w"),
	}
	second := row.RecordSet{
		"002": values("a", "b", "c", "d"),
		"003": values("a", "b", "c", "X"),
		"004": values("a", "b", "c", "d"),
		"005": values("x", "y", "z", "w"),
	}

	res := Compare(first, second)

	seen := map[string]int{}
	for _, e := range res.UniqueToFirst {
		seen[e.Code]++
	}
	for _, e := range res.UniqueToSecond {
		seen[e.Code]++
	}
	for _, e := range res.Modified {
		seen[e.Code]++
	}

	for code, n := range seen {
		if n > 1 {
			t.Errorf("code %s appears in %d collections, want at most 1", code, n)
		}
	}

	// 001 only-first, 004 only-second, 003 modified; 002 and 005 identical.
	for _, code := range []string{"001", "003", "004"} {
		if seen[code] != 1 {
			t.Errorf("code %s missing from result", code)
		}
	}
	for _, code := range []string{"002", "005"} {
		if seen[code] != 0 {
			t.Errorf("code %s reported despite identical values", code)
		}
	}
}

func TestCompare_OutputSortedByCode(t *testing.T) {
	first := row.RecordSet{
		"300": values("a", "b", "c", "d"),
		"100": values("a", "b", "c", "d"),
		"200": values("a", "b", "c", "d"),
	}

	res := Compare(first, row.RecordSet{})

	codes := make([]string, len(res.UniqueToFirst))
	for i, e := range res.UniqueToFirst {
		codes[i] = e.Code
	}
	if !sort.StringsAreSorted(codes) {
		t.Errorf("UniqueToFirst codes = %v, want sorted", codes)
	}
}
