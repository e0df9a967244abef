// Package diff computes the keyed three-way comparison of two RecordSets.
//
// The result partitions the union of both key sets into rows unique to the
// first file, rows unique to the second file, and rows present in both
// whose four-field values differ. The three collections are pairwise
// disjoint by Code; a Code present in both files with identical values
// appears in none of them.
package diff

import (
	"sort"

	"github.com/enova-tools/hrexport/internal/row"
)

// Entry is one reported row of a diff collection.
//
// For modified rows the values are the first file's version, shown as the
// representative. Active mirrors the flag the compare tool prints:
// false for rows only in the first file (no longer present), true for
// rows only in the second file and for modified rows.
type Entry struct {
	Code   string
	Values row.FieldValues
	Active bool
}

// Result is the three-way partition of two RecordSets.
// Each collection is sorted by Code so output is deterministic.
type Result struct {
	UniqueToFirst  []Entry
	UniqueToSecond []Entry
	Modified       []Entry
}

// Empty reports whether the two RecordSets were identical.
func (r Result) Empty() bool {
	return len(r.UniqueToFirst) == 0 && len(r.UniqueToSecond) == 0 && len(r.Modified) == 0
}

// Compare computes the diff of two RecordSets keyed by Code.
//
// Equality for modified detection is exact structural equality of the
// four-field values: whitespace or case differences count as real
// differences.
func Compare(first, second row.RecordSet) Result {
	var res Result

	for _, code := range sortedCodes(first) {
		values := first[code]
		other, ok := second[code]
		switch {
		case !ok:
			res.UniqueToFirst = append(res.UniqueToFirst, Entry{Code: code, Values: values, Active: false})
		case other != values:
			res.Modified = append(res.Modified, Entry{Code: code, Values: values, Active: true})
		}
	}

	for _, code := range sortedCodes(second) {
		if _, ok := first[code]; !ok {
			res.UniqueToSecond = append(res.UniqueToSecond, Entry{Code: code, Values: second[code], Active: true})
		}
	}

	return res
}

func sortedCodes(set row.RecordSet) []string {
	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
