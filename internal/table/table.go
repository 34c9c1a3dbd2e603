package table

import (
	"errors"
	"strings"
)

// ErrHeaderNotFound is returned by Locate when no row looks like a header.
var ErrHeaderNotFound = errors.New("table: header row not found")

// headerMarkers are the substrings that identify the header row of an
// embedded test table.
var headerMarkers = []string{"description", "method"}

// Row is one data row, positionally aligned with Table.Columns.
type Row []Cell

// Table is a grid after header discovery.
type Table struct {
	Columns []string
	Rows    []Row
}

// Locate scans g top to bottom for the first row whose non-empty cells,
// joined and lower-cased, mention one of the header markers. That row becomes
// the column names and everything below it the data.
func Locate(g Grid) (*Table, error) {
	idx := HeaderIndex(g)
	if idx < 0 {
		return nil, ErrHeaderNotFound
	}
	return build(g, idx), nil
}

// FromHeader treats the first row of g as the header.
func FromHeader(g Grid) *Table {
	if len(g) == 0 {
		return &Table{}
	}
	return build(g, 0)
}

// HeaderIndex returns the index of the first header-like row, or -1.
func HeaderIndex(g Grid) int {
	for i, row := range g {
		parts := make([]string, 0, len(row))
		for _, c := range row {
			if !c.IsEmpty() {
				parts = append(parts, c.String())
			}
		}
		joined := strings.ToLower(strings.Join(parts, " "))
		for _, m := range headerMarkers {
			if strings.Contains(joined, m) {
				return i
			}
		}
	}
	return -1
}

func build(g Grid, header int) *Table {
	width := g.Width()
	t := &Table{Columns: make([]string, width)}
	for j := 0; j < width; j++ {
		t.Columns[j] = ColumnName(cellAt(g[header], j))
	}

	for _, src := range g[header+1:] {
		row := make(Row, width)
		blank := true
		for j := 0; j < width; j++ {
			row[j] = cellAt(src, j)
			if !row[j].IsEmpty() {
				blank = false
			}
		}
		if blank {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ColumnName normalises a header cell: trimmed, with embedded newlines
// replaced by spaces.
func ColumnName(c Cell) string {
	return strings.ReplaceAll(strings.TrimSpace(c.String()), "\n", " ")
}

func cellAt(row []Cell, j int) Cell {
	if j < len(row) {
		return row[j]
	}
	return Cell{}
}

// Index returns the position of the first column called name, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// value returns the cell in row i under the first column called name. Unknown
// columns and out-of-range rows read as empty.
func (t *Table) value(i int, name string) Cell {
	if i < 0 || i >= len(t.Rows) {
		return Cell{}
	}
	return t.Rows[i].At(t.Index(name))
}

// At returns the cell at column j, or an empty cell when j is out of range.
func (r Row) At(j int) Cell {
	if j < 0 || j >= len(r) {
		return Cell{}
	}
	return r[j]
}
