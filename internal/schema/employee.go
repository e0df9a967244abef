// Package schema defines the fixed employee schema shared by the convert
// and compare tools.
//
// enova365 emits personnel exports with exactly five columns. The column
// labels below are the literal Polish labels from the export and must not
// be translated or unified: the two tools historically label the last
// column differently (Stanowisko vs Zatrudnienie) and downstream consumers
// rely on the spelling each tool prints.
package schema

// ExpectedHeader is the column-label line enova365 writes at the top of
// every export. It is matched with all whitespace removed and excluded
// from data processing.
const ExpectedHeader = "Kod\tNazwisko\tImie\tDział\tZatrudnienie"

// ConvertColumns are the table labels used by the convert tool.
var ConvertColumns = []string{"Kod", "Nazwisko", "Imię", "Dział", "Stanowisko"}

// CompareColumns are the table labels used by the compare tool.
// The diff tables append an extra is_active column to these.
var CompareColumns = []string{"Kod", "Nazwisko", "Imię", "Dział", "Zatrudnienie"}
