package qa

import (
	"strings"

	"github.com/sells-group/vessel-qa/internal/table"
)

// Column names read from each standards sheet.
const (
	ColParameter = "Parameter"
	ColMin       = "Min"
	ColMax       = "Max"
	ColUnit      = "Unit / Remarks"
)

// SpecRow is one specification line of a standards table.
type SpecRow struct {
	Parameter string   `json:"parameter" yaml:"parameter"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Unit      string   `json:"unit" yaml:"unit"`
}

// Catalog holds the per-product specification tables of a standards
// workbook. It is read-only once built.
type Catalog struct {
	products []string
	specs    map[string][]SpecRow
}

// NewCatalog builds a catalog from standards sheets. Each sheet is one
// product, keyed by sheet name, with its header on the first row. Product
// order follows the workbook.
func NewCatalog(sheets []table.Sheet) *Catalog {
	c := &Catalog{specs: make(map[string][]SpecRow, len(sheets))}
	for _, s := range sheets {
		if _, dup := c.specs[s.Name]; dup {
			continue
		}
		c.products = append(c.products, s.Name)
		c.specs[s.Name] = specRows(table.FromHeader(s.Grid))
	}
	return c
}

func specRows(t *table.Table) []SpecRow {
	param := t.Index(ColParameter)
	minIdx, maxIdx, unitIdx := t.Index(ColMin), t.Index(ColMax), t.Index(ColUnit)

	rows := make([]SpecRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, SpecRow{
			Parameter: r.At(param).String(),
			Min:       optional(ToNumber(r.At(minIdx))),
			Max:       optional(ToNumber(r.At(maxIdx))),
			Unit:      r.At(unitIdx).String(),
		})
	}
	return rows
}

// Products returns the product keys in workbook order.
func (c *Catalog) Products() []string {
	out := make([]string, len(c.products))
	copy(out, c.products)
	return out
}

// Parameters returns the parameter names of product in table order.
// Duplicates are kept.
func (c *Catalog) Parameters(product string) []string {
	rows := c.specs[product]
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Parameter
	}
	return out
}

// Lookup returns the first specification row of product whose parameter is
// exactly name.
func (c *Catalog) Lookup(product, name string) (SpecRow, bool) {
	for _, r := range c.specs[product] {
		if r.Parameter == name {
			return r, true
		}
	}
	return SpecRow{}, false
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// String lists the product keys, for logging.
func (c *Catalog) String() string { return strings.Join(c.products, ", ") }
