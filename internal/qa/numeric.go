package qa

import (
	"strconv"
	"strings"

	"github.com/sells-group/vessel-qa/internal/table"
)

// comparisonGlyphs are stripped from textual results before parsing. "<0.05"
// therefore reads as 0.05 and the direction is lost.
var comparisonGlyphs = strings.NewReplacer("<", "", ">", "")

// ToNumber parses a raw cell into a float. ok is false for blank cells and
// anything that does not parse as a decimal.
func ToNumber(c table.Cell) (v float64, ok bool) {
	switch c.Kind {
	case table.KindNumber:
		return c.Num, true
	case table.KindBool:
		if c.Bool {
			return 1, true
		}
		return 0, true
	case table.KindText:
		s := strings.TrimSpace(comparisonGlyphs.Replace(c.Text))
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// optional converts a parse result to a nil-able value.
func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
