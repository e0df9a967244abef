// Package row implements the row-parsing contract shared by the convert
// and compare tools.
//
// Export files are frequently hand-edited or produced by spreadsheet tools
// with inconsistent spacing and tabbing, so parsing is deliberately
// tolerant: a line that does not fit the five-field schema is reported as
// skipped rather than failing the whole file. A row is never partially
// accepted — four or six fields reject the line wholesale so a field can
// never land in the wrong column.
package row

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldCount is the number of columns in an employee export row.
const FieldCount = 5

// DelimiterMode selects how a raw line is split into fields.
//
// The two tools use different rules. This asymmetry is inherited from the
// original exports and is kept as two separate configuration values
// instead of being unified.
type DelimiterMode int

const (
	// DelimTabOrSpaces splits on a literal tab or on two-or-more
	// consecutive spaces. Used by the convert tool, whose inputs are
	// often re-aligned by hand in a text editor.
	DelimTabOrSpaces DelimiterMode = iota

	// DelimTab splits on literal tabs only. Used by the compare tool.
	DelimTab
)

// ParseDelimiterMode converts a configuration string to a DelimiterMode.
// Valid values: "tab-or-spaces", "tab".
func ParseDelimiterMode(s string) (DelimiterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tab-or-spaces":
		return DelimTabOrSpaces, nil
	case "tab":
		return DelimTab, nil
	default:
		return DelimTabOrSpaces, fmt.Errorf("unknown delimiter mode %q", s)
	}
}

// Pre-compiled delimiter and whitespace patterns (avoids recompilation on each line)
var (
	tabOrSpacesDelim = regexp.MustCompile(`\t| {2,}`)
	allWhitespace    = regexp.MustCompile(`\s+`)
)

// Row is a single employee record: exactly five named text fields.
// Fields are trimmed and stripped of double quotes at construction time;
// no further normalization is applied.
type Row struct {
	Code       string
	LastName   string
	FirstName  string
	Department string
	Position   string
}

// New builds a Row from exactly FieldCount fields, in export column order.
func New(fields []string) (Row, error) {
	if len(fields) != FieldCount {
		return Row{}, fmt.Errorf("row has %d fields, expected %d", len(fields), FieldCount)
	}
	return Row{
		Code:       fields[0],
		LastName:   fields[1],
		FirstName:  fields[2],
		Department: fields[3],
		Position:   fields[4],
	}, nil
}

// Fields returns the row as an ordered slice in export column order.
func (r Row) Fields() []string {
	return []string{r.Code, r.LastName, r.FirstName, r.Department, r.Position}
}

// Values returns the four non-key fields, the part of the row a RecordSet
// stores under the Code key.
func (r Row) Values() FieldValues {
	return FieldValues{r.LastName, r.FirstName, r.Department, r.Position}
}

// FieldValues holds the four fields of a row other than its Code.
// A fixed-size array so RecordSet entries compare with ==.
type FieldValues [FieldCount - 1]string

// LineKind classifies the outcome of parsing one raw line.
type LineKind int

const (
	// LineHeader means the line matched the expected header. Header
	// lines are intentionally excluded from output; they are not
	// malformed.
	LineHeader LineKind = iota

	// LineRow means the line parsed into a valid five-field Row.
	LineRow

	// LineMalformed means the line did not split into exactly five
	// fields. The trimmed original is kept for diagnostics.
	LineMalformed
)

// Outcome is the result of parsing a single line.
type Outcome struct {
	Kind LineKind
	Row  Row    // populated only when Kind == LineRow
	Raw  string // the trimmed original line
}

// ParseLine classifies one raw input line against the expected header and
// the five-field schema.
//
// The header comparison removes all whitespace from both sides, so a
// header line survives retabbing by spreadsheet tools. Field values have
// double quotes stripped after splitting.
func ParseLine(line, expectedHeader string, mode DelimiterMode) Outcome {
	trimmed := strings.TrimSpace(line)

	if stripWhitespace(trimmed) == stripWhitespace(expectedHeader) {
		return Outcome{Kind: LineHeader, Raw: trimmed}
	}

	fields := splitFields(trimmed, mode)
	for i, f := range fields {
		fields[i] = strings.ReplaceAll(f, `"`, "")
	}

	r, err := New(fields)
	if err != nil {
		return Outcome{Kind: LineMalformed, Raw: trimmed}
	}
	return Outcome{Kind: LineRow, Row: r, Raw: trimmed}
}

func splitFields(line string, mode DelimiterMode) []string {
	if mode == DelimTab {
		return strings.Split(line, "\t")
	}
	return tabOrSpacesDelim.Split(line, -1)
}

func stripWhitespace(s string) string {
	return allWhitespace.ReplaceAllString(s, "")
}

// Result accumulates the outcome of parsing a whole file.
type Result struct {
	Rows     []Row    // accepted rows, in input order
	Skipped  []string // trimmed malformed lines, in input order
	Excluded int      // header lines excluded from data processing
}

// ParseLines parses every line of one file. Malformed lines are collected
// in Skipped and never abort the run.
func ParseLines(lines []string, expectedHeader string, mode DelimiterMode) Result {
	var res Result
	for _, line := range lines {
		out := ParseLine(line, expectedHeader, mode)
		switch out.Kind {
		case LineHeader:
			res.Excluded++
		case LineRow:
			res.Rows = append(res.Rows, out.Row)
		case LineMalformed:
			res.Skipped = append(res.Skipped, out.Raw)
		}
	}
	return res
}

// RecordSet maps an employee Code to the remaining four fields of its row.
type RecordSet map[string]FieldValues

// BuildRecordSet parses one file's lines into a RecordSet keyed by Code.
//
// When two lines share a Code the later line silently replaces the
// earlier one. Exports re-list an employee when a role changes mid-period
// and the last entry is the current one, so last-write-wins is the
// intended policy, not an error.
func BuildRecordSet(lines []string, expectedHeader string, mode DelimiterMode) (RecordSet, []string) {
	res := ParseLines(lines, expectedHeader, mode)
	set := make(RecordSet, len(res.Rows))
	for _, r := range res.Rows {
		set[r.Code] = r.Values()
	}
	return set, res.Skipped
}
