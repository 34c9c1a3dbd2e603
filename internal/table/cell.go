package table

import (
	"strconv"
)

// Kind identifies what a Cell holds.
type Kind int

const (
	// KindEmpty is a blank or absent cell. It is the zero value.
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindBool
)

// Cell is a single raw spreadsheet value.
type Cell struct {
	Kind Kind
	Text string
	Num  float64
	Bool bool
}

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: KindNumber, Num: f} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// Empty returns a blank cell.
func Empty() Cell { return Cell{} }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// String renders the cell the way it would read in a spreadsheet. Integral
// numbers print without a fractional part.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindBool:
		if c.Bool {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// Grid is a rectangular-ish block of raw cells indexed by row then column.
// Rows may have different lengths; missing trailing cells read as empty.
type Grid [][]Cell

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Sheet is a named grid, one per workbook tab.
type Sheet struct {
	Name string
	Grid Grid
}
