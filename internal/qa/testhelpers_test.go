package qa

import (
	"github.com/sells-group/vessel-qa/internal/table"
)

// standardsSheet builds a standards sheet from parameter rows of
// {parameter, min, max, unit}; blank strings become empty cells.
func standardsSheet(name string, rows ...[4]string) table.Sheet {
	g := table.Grid{{
		table.Text(ColParameter), table.Text(ColMin), table.Text(ColMax), table.Text(ColUnit),
	}}
	for _, r := range rows {
		line := make([]table.Cell, len(r))
		for i, v := range r {
			if v != "" {
				line[i] = table.Text(v)
			}
		}
		g = append(g, line)
	}
	return table.Sheet{Name: name, Grid: g}
}

// vesselSheet builds a vessel report sheet with two lines of noise above a
// table headed by header.
func vesselSheet(name string, header []string, rows ...[]table.Cell) table.Sheet {
	g := table.Grid{
		{table.Text("QUALITY CERTIFICATE")},
		{},
	}
	head := make([]table.Cell, len(header))
	for i, h := range header {
		head[i] = table.Text(h)
	}
	g = append(g, head)
	g = append(g, rows...)
	return table.Sheet{Name: name, Grid: g}
}

var vesselHeader = []string{"S.No", DescriptionColumn, "Method", "HDIP Result", "Load Port Result"}

func testRow(desc string, hdip, load table.Cell) []table.Cell {
	return []table.Cell{table.Empty(), table.Text(desc), table.Text("ASTM"), hdip, load}
}
