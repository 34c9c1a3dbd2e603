package qa

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sells-group/vessel-qa/internal/table"
)

// SummarySheet is the name of the summary table in the output bundle.
const SummarySheet = "Summary"

// MaxSheetName is the longest sheet name an XLSX workbook accepts.
const MaxSheetName = 31

// Output column headers.
var (
	SummaryColumns = []string{"Sheet Name", "Product", "Tests Checked", "Passed", "Failed", "Overall Result", "Failed Tests"}
	DetailColumns  = []string{"Test", "HDIP Result", "Load Port Result", "Min", "Max", "Unit/Remarks", "Status"}
)

// DetailRow is one evaluated test of a vessel report sheet.
type DetailRow struct {
	Test           string   `json:"test" yaml:"test"`
	HDIPResult     *float64 `json:"hdip_result" yaml:"hdip_result"`
	LoadPortResult *float64 `json:"load_port_result" yaml:"load_port_result"`
	Min            *float64 `json:"min" yaml:"min"`
	Max            *float64 `json:"max" yaml:"max"`
	Unit           string   `json:"unit" yaml:"unit"`
	Status         Status   `json:"status" yaml:"status"`
}

// SheetSummary aggregates the detail rows of one processed sheet.
type SheetSummary struct {
	SheetName    string   `json:"sheet_name" yaml:"sheet_name"`
	Product      string   `json:"product" yaml:"product"`
	Standard     string   `json:"standard" yaml:"standard"`
	TestsChecked int      `json:"tests_checked" yaml:"tests_checked"`
	Passed       int      `json:"passed" yaml:"passed"`
	Failed       int      `json:"failed" yaml:"failed"`
	Overall      Status   `json:"overall" yaml:"overall"`
	FailedTests  []string `json:"failed_tests" yaml:"failed_tests"`
}

// SheetDetail holds the detail rows of one processed sheet.
type SheetDetail struct {
	SheetName string      `json:"sheet_name" yaml:"sheet_name"`
	Rows      []DetailRow `json:"rows" yaml:"rows"`
}

// Reason says why a sheet or row was left out of the report.
type Reason string

const (
	ReasonNoTable          Reason = "no_table"
	ReasonUnknownProduct   Reason = "unknown_product"
	ReasonNoStandard       Reason = "no_standard"
	ReasonNoResultColumn   Reason = "no_result_column"
	ReasonNoDescriptionCol Reason = "no_description_column"
	ReasonEmptyDescription Reason = "empty_description"
	ReasonNoParameter      Reason = "no_parameter_match"
	ReasonNonNumericResult Reason = "non_numeric_result"
	ReasonNoBounds         Reason = "no_bounds"
)

// Diagnostic records a sheet or row the engine could not evaluate. Row is
// the 1-based data row within the located table, or 0 for sheet-level
// entries.
type Diagnostic struct {
	Sheet  string `json:"sheet" yaml:"sheet"`
	Row    int    `json:"row,omitempty" yaml:"row,omitempty"`
	Test   string `json:"test,omitempty" yaml:"test,omitempty"`
	Reason Reason `json:"reason" yaml:"reason"`
}

// SheetLevel reports whether the whole sheet was dropped.
func (d Diagnostic) SheetLevel() bool { return d.Row == 0 }

// Report is the result bundle of one run.
type Report struct {
	Summaries   []SheetSummary `json:"summary" yaml:"summary"`
	Details     []SheetDetail  `json:"details" yaml:"details"`
	Diagnostics []Diagnostic   `json:"diagnostics" yaml:"diagnostics"`
}

// Detail returns the detail rows of the named sheet.
func (r *Report) Detail(sheet string) ([]DetailRow, bool) {
	for _, d := range r.Details {
		if d.SheetName == sheet {
			return d.Rows, true
		}
	}
	return nil, false
}

// Passed reports whether every processed sheet passed.
func (r *Report) Passed() bool {
	for _, s := range r.Summaries {
		if s.Overall != StatusPass {
			return false
		}
	}
	return true
}

// SkippedSheets returns the sheet-level diagnostics.
func (r *Report) SkippedSheets() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.SheetLevel() && d.Reason != ReasonNoDescriptionCol {
			out = append(out, d)
		}
	}
	return out
}

// Tables renders the report as named tables ready for serialisation: the
// summary first, then one detail table per processed sheet. Each grid has
// its header on the first row.
func (r *Report) Tables() []table.Sheet {
	names := newSheetNamer()
	out := make([]table.Sheet, 0, len(r.Details)+1)

	summary := table.Grid{textRow(SummaryColumns)}
	for _, s := range r.Summaries {
		summary = append(summary, []table.Cell{
			table.Text(s.SheetName),
			table.Text(s.Product),
			table.Number(float64(s.TestsChecked)),
			table.Number(float64(s.Passed)),
			table.Number(float64(s.Failed)),
			table.Text(string(s.Overall)),
			table.Text(strings.Join(s.FailedTests, ", ")),
		})
	}
	out = append(out, table.Sheet{Name: names.take(SummarySheet), Grid: summary})

	for _, d := range r.Details {
		g := table.Grid{textRow(DetailColumns)}
		for _, row := range d.Rows {
			g = append(g, []table.Cell{
				table.Text(row.Test),
				numberCell(row.HDIPResult),
				numberCell(row.LoadPortResult),
				numberCell(row.Min),
				numberCell(row.Max),
				table.Text(row.Unit),
				table.Text(string(row.Status)),
			})
		}
		out = append(out, table.Sheet{Name: names.take(d.SheetName), Grid: g})
	}
	return out
}

func textRow(cols []string) []table.Cell {
	row := make([]table.Cell, len(cols))
	for i, c := range cols {
		row[i] = table.Text(c)
	}
	return row
}

func numberCell(v *float64) table.Cell {
	if v == nil {
		return table.Empty()
	}
	return table.Number(*v)
}

// sheetNamer hands out workbook-safe sheet names: truncated to MaxSheetName
// characters and made unique, case-insensitively, with a numeric suffix.
type sheetNamer struct {
	used map[string]bool
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]bool)}
}

func (n *sheetNamer) take(name string) string {
	base := truncate(name, MaxSheetName)
	candidate := base
	for i := 1; n.used[strings.ToLower(candidate)]; i++ {
		suffix := strconv.Itoa(i)
		candidate = truncate(base, MaxSheetName-len(suffix)) + suffix
	}
	n.used[strings.ToLower(candidate)] = true
	return candidate
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
