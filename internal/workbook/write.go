package workbook

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/sells-group/vessel-qa/internal/table"
)

// Status values that get a highlight when written.
const (
	passText = "PASS"
	failText = "FAIL"
)

const columnWidth = 18

type styles struct {
	header int
	pass   int
	fail   int
}

// Write serialises sheets, each with its header on the first row, as an
// XLSX workbook. Header cells are bold, PASS cells green and FAIL cells
// bold red.
func Write(w io.Writer, sheets []table.Sheet) error {
	f, err := build(sheets)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "workbook: write")
	}
	return nil
}

// WriteFile writes sheets to path, replacing any existing file.
func WriteFile(path string, sheets []table.Sheet) error {
	out, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "workbook: create %s", path)
	}
	if err := Write(out, sheets); err != nil {
		out.Close()
		return err
	}
	return eris.Wrapf(out.Close(), "workbook: close %s", path)
}

func build(sheets []table.Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, eris.New("workbook: no sheets to write")
	}

	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, s := range sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), s.Name)
		} else {
			_, err = f.NewSheet(s.Name)
		}
		if err != nil {
			f.Close()
			return nil, eris.Wrapf(err, "workbook: add sheet %q", s.Name)
		}
		if err := writeSheet(f, s, st); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	if st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	}); err != nil {
		return st, eris.Wrap(err, "workbook: header style")
	}
	if st.pass, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "008000"},
	}); err != nil {
		return st, eris.Wrap(err, "workbook: pass style")
	}
	if st.fail, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FF0000"},
	}); err != nil {
		return st, eris.Wrap(err, "workbook: fail style")
	}
	return st, nil
}

func writeSheet(f *excelize.File, s table.Sheet, st styles) error {
	for i, row := range s.Grid {
		for j, c := range row {
			if c.IsEmpty() {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return eris.Wrapf(err, "workbook: cell %d,%d", i, j)
			}
			if err := f.SetCellValue(s.Name, ref, cellValue(c)); err != nil {
				return eris.Wrapf(err, "workbook: set %s!%s", s.Name, ref)
			}

			style := 0
			switch {
			case i == 0:
				style = st.header
			case c.Kind == table.KindText && c.Text == passText:
				style = st.pass
			case c.Kind == table.KindText && c.Text == failText:
				style = st.fail
			}
			if style != 0 {
				if err := f.SetCellStyle(s.Name, ref, ref, style); err != nil {
					return eris.Wrapf(err, "workbook: style %s!%s", s.Name, ref)
				}
			}
		}
	}

	if width := s.Grid.Width(); width > 0 {
		last, err := excelize.ColumnNumberToName(width)
		if err != nil {
			return eris.Wrap(err, "workbook: column name")
		}
		if err := f.SetColWidth(s.Name, "A", last, columnWidth); err != nil {
			return eris.Wrapf(err, "workbook: column width %s", s.Name)
		}
	}
	return nil
}

func cellValue(c table.Cell) any {
	switch c.Kind {
	case table.KindNumber:
		return c.Num
	case table.KindBool:
		return c.Bool
	default:
		return c.Text
	}
}
