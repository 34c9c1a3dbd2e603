// Package qa compares vessel report test results against laboratory
// standards and assembles the pass/fail report.
package qa

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/vessel-qa/internal/classify"
	"github.com/sells-group/vessel-qa/internal/fuzzy"
	"github.com/sells-group/vessel-qa/internal/table"
)

// DescriptionColumn names the vessel report column holding the test name.
const DescriptionColumn = "Tests Description"

// Engine runs the comparison of vessel report sheets against a catalog.
// An Engine holds no per-run state and may be reused.
type Engine struct {
	catalog         *Catalog
	productCutoff   float64
	parameterCutoff float64
	log             *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithProductCutoff overrides the similarity needed to bind a product label
// to a standards sheet.
func WithProductCutoff(c float64) Option {
	return func(e *Engine) { e.productCutoff = c }
}

// WithParameterCutoff overrides the similarity needed to bind a test
// description to a specification parameter.
func WithParameterCutoff(c float64) Option {
	return func(e *Engine) { e.parameterCutoff = c }
}

// WithLogger sets the logger. Defaults to the global zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine creates an engine over the given standards catalog.
func NewEngine(catalog *Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:         catalog,
		productCutoff:   fuzzy.ProductCutoff,
		parameterCutoff: fuzzy.ParameterCutoff,
	}
	for _, o := range opts {
		o(e)
	}
	if e.log == nil {
		e.log = zap.L()
	}
	return e
}

// Run evaluates every vessel report sheet in order. Sheets and rows that
// cannot be evaluated are left out of the summary and recorded as
// diagnostics instead.
func (e *Engine) Run(sheets []table.Sheet) *Report {
	r := &Report{
		Summaries:   []SheetSummary{},
		Details:     []SheetDetail{},
		Diagnostics: []Diagnostic{},
	}
	for _, s := range sheets {
		e.runSheet(r, s)
	}

	e.log.Info("qa: run complete",
		zap.Int("sheets", len(sheets)),
		zap.Int("processed", len(r.Summaries)),
		zap.Int("diagnostics", len(r.Diagnostics)),
	)
	return r
}

// resultColumns holds the measurement column positions; -1 means absent.
type resultColumns struct {
	primary   int
	secondary int
}

func (e *Engine) runSheet(r *Report, s table.Sheet) {
	log := e.log.With(zap.String("sheet", s.Name))
	skip := func(reason Reason) {
		log.Debug("qa: sheet skipped", zap.String("reason", string(reason)))
		r.Diagnostics = append(r.Diagnostics, Diagnostic{Sheet: s.Name, Reason: reason})
	}

	tbl, err := table.Locate(s.Grid)
	if err != nil {
		skip(ReasonNoTable)
		return
	}

	product, ok := classify.Product(s.Name)
	if !ok {
		skip(ReasonUnknownProduct)
		return
	}

	standard, ok := fuzzy.BestMatch(product, e.catalog.Products(), e.productCutoff)
	if !ok {
		skip(ReasonNoStandard)
		return
	}

	cols, ok := findResultColumns(tbl)
	if !ok {
		skip(ReasonNoResultColumn)
		return
	}

	desc := tbl.Index(DescriptionColumn)
	if desc < 0 {
		// The sheet is still summarised, with nothing checked.
		r.Diagnostics = append(r.Diagnostics, Diagnostic{Sheet: s.Name, Reason: ReasonNoDescriptionCol})
	}

	params := e.catalog.Parameters(standard)
	summary := SheetSummary{
		SheetName:   s.Name,
		Product:     product,
		Standard:    standard,
		FailedTests: []string{},
	}
	detail := SheetDetail{SheetName: s.Name, Rows: []DetailRow{}}

	for i, row := range tbl.Rows {
		rowSkip := func(test string, reason Reason) {
			r.Diagnostics = append(r.Diagnostics, Diagnostic{Sheet: s.Name, Row: i + 1, Test: test, Reason: reason})
		}

		test := strings.TrimSpace(row.At(desc).String())
		if test == "" {
			rowSkip("", ReasonEmptyDescription)
			continue
		}

		primary, primaryOK := ToNumber(row.At(cols.primary))
		secondary := optional(ToNumber(row.At(cols.secondary)))

		param, ok := fuzzy.BestMatch(test, params, e.parameterCutoff)
		if !ok {
			rowSkip(test, ReasonNoParameter)
			continue
		}
		spec, _ := e.catalog.Lookup(standard, param)

		if !primaryOK {
			rowSkip(test, ReasonNonNumericResult)
			continue
		}
		if spec.Min == nil && spec.Max == nil {
			rowSkip(test, ReasonNoBounds)
			continue
		}

		status := Evaluate(primary, spec.Min, spec.Max)
		detail.Rows = append(detail.Rows, DetailRow{
			Test:           test,
			HDIPResult:     optional(primary, true),
			LoadPortResult: secondary,
			Min:            spec.Min,
			Max:            spec.Max,
			Unit:           spec.Unit,
			Status:         status,
		})
		if status == StatusPass {
			summary.Passed++
		} else {
			summary.Failed++
			summary.FailedTests = append(summary.FailedTests, test)
		}
	}

	summary.TestsChecked = summary.Passed + summary.Failed
	summary.Overall = StatusPass
	if summary.Failed > 0 {
		summary.Overall = StatusFail
	}

	log.Debug("qa: sheet evaluated",
		zap.String("product", product),
		zap.String("standard", standard),
		zap.Int("checked", summary.TestsChecked),
		zap.Int("failed", summary.Failed),
	)
	r.Summaries = append(r.Summaries, summary)
	r.Details = append(r.Details, detail)
}

// findResultColumns picks the primary (HDIP) and secondary (load port)
// measurement columns. Without an HDIP column, the first two "result"
// columns in table order are used.
func findResultColumns(t *table.Table) (resultColumns, bool) {
	var hdip, load, results []string
	for _, c := range t.Columns {
		lc := strings.ToLower(c)
		if !strings.Contains(lc, "result") {
			continue
		}
		results = append(results, c)
		if strings.Contains(lc, "hdip") {
			hdip = append(hdip, c)
		}
		if strings.Contains(lc, "load") {
			load = append(load, c)
		}
	}

	cols := resultColumns{primary: -1, secondary: -1}
	switch {
	case len(hdip) > 0:
		cols.primary = t.Index(hdip[0])
		if len(load) > 0 {
			cols.secondary = t.Index(load[0])
		}
	case len(results) >= 2:
		cols.primary, cols.secondary = t.Index(results[0]), t.Index(results[1])
	case len(results) == 1:
		cols.primary = t.Index(results[0])
	default:
		return cols, false
	}
	return cols, true
}
