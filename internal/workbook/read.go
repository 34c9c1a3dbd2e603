// Package workbook converts between XLSX files and named cell grids.
package workbook

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/vessel-qa/internal/table"
)

// ReadFile opens an XLSX file and returns every sheet in workbook order.
func ReadFile(path string) ([]table.Sheet, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "workbook: open file %s", path)
	}
	return sheets(f), nil
}

// Read parses an XLSX workbook from r.
func Read(r io.Reader) ([]table.Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "workbook: read")
	}
	return ReadBytes(data)
}

// ReadBytes parses an in-memory XLSX workbook.
func ReadBytes(data []byte) ([]table.Sheet, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "workbook: parse xlsx")
	}
	return sheets(f), nil
}

func sheets(f *xlsx.File) []table.Sheet {
	out := make([]table.Sheet, 0, len(f.Sheets))
	for _, s := range f.Sheets {
		out = append(out, table.Sheet{Name: s.Name, Grid: grid(s)})
	}
	return out
}

func grid(s *xlsx.Sheet) table.Grid {
	g := make(table.Grid, len(s.Rows))
	for i, row := range s.Rows {
		if row == nil {
			continue
		}
		cells := make([]table.Cell, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = toCell(c)
		}
		g[i] = cells
	}
	return g
}

// toCell maps an xlsx cell to a raw table cell. Numeric cells keep their
// float value; formulas read as their cached result.
func toCell(c *xlsx.Cell) table.Cell {
	if c == nil || c.Value == "" {
		return table.Empty()
	}
	switch c.Type() {
	case xlsx.CellTypeNumeric:
		if f, err := c.Float(); err == nil {
			return table.Number(f)
		}
	case xlsx.CellTypeBool:
		return table.Bool(c.Bool())
	}
	return table.Text(c.String())
}
