package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

type fixtureSheet struct {
	name string
	rows [][]any
}

// createTestXLSX saves a workbook with the given sheets in order. Row
// values may be string, float64, int or nil for a blank cell.
func createTestXLSX(t *testing.T, sheets ...fixtureSheet) string {
	t.Helper()
	f := xlsx.NewFile()
	for _, s := range sheets {
		sheet, err := f.AddSheet(s.name)
		require.NoError(t, err)
		for _, rowData := range s.rows {
			row := sheet.AddRow()
			for _, v := range rowData {
				cell := row.AddCell()
				switch val := v.(type) {
				case string:
					cell.SetString(val)
				case float64:
					cell.SetFloat(val)
				case int:
					cell.SetInt(val)
				case bool:
					cell.SetBool(val)
				}
			}
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.Save(path))
	return path
}
