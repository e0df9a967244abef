// Package report renders pipeline results as console tables.
//
// The core exposes accepted rows, skipped-line diagnostics, and the three
// diff collections; this package owns how they look. Nothing here feeds
// back into processing, so callers are free to skip rendering entirely
// (the default — tables are opt-in via a flag).
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/enova-tools/hrexport/internal/diff"
	"github.com/enova-tools/hrexport/internal/row"
	"github.com/enova-tools/hrexport/internal/schema"
)

// Rows prints accepted rows as a table using the convert tool's column
// labels.
func Rows(w io.Writer, rows []row.Row) {
	t := newTable(w, schema.ConvertColumns)
	for _, r := range rows {
		t.Append(r.Fields())
	}
	t.Render()
}

// DiffEntries prints one diff collection under a title, using the compare
// tool's column labels plus the is_active flag column.
func DiffEntries(w io.Writer, title string, entries []diff.Entry) {
	fmt.Fprintln(w, title)

	header := append(append([]string{}, schema.CompareColumns...), "is_active")
	t := newTable(w, header)
	for _, e := range entries {
		t.Append([]string{
			e.Code,
			e.Values[0],
			e.Values[1],
			e.Values[2],
			e.Values[3],
			strconv.FormatBool(e.Active),
		})
	}
	t.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	// Keep the Polish labels as-is; auto-formatting would uppercase them.
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	return t
}
