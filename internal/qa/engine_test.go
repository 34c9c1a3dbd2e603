package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/vessel-qa/internal/table"
)

func testCatalog() *Catalog {
	return NewCatalog([]table.Sheet{
		standardsSheet("HSD",
			[4]string{"Flash Point", "38", "", "°C"},
			[4]string{"Density @ 15°C", "0.82", "0.87", "kg/L"},
			[4]string{"Sulphur Content", "", "0.05", "% wt"},
			[4]string{"Colour", "", "", "Visual"},
		),
		standardsSheet("JET FUEL", [4]string{"Freezing Point", "", "-47", "°C"}),
	})
}

func TestEngine_SinglePassingTest(t *testing.T) {
	catalog := NewCatalog([]table.Sheet{standardsSheet("HSD", [4]string{"Flash Point", "38", "", "°C"})})
	sheet := vesselSheet("HSD CARGO 1", []string{DescriptionColumn, "HDIP Result"},
		[]table.Cell{table.Text("Flash Point"), table.Text("40")},
	)

	r := NewEngine(catalog).Run([]table.Sheet{sheet})

	require.Len(t, r.Summaries, 1)
	s := r.Summaries[0]
	assert.Equal(t, "HSD CARGO 1", s.SheetName)
	assert.Equal(t, "HSD", s.Product)
	assert.Equal(t, "HSD", s.Standard)
	assert.Equal(t, 1, s.TestsChecked)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 0, s.Failed)
	assert.Equal(t, StatusPass, s.Overall)
	assert.Empty(t, s.FailedTests)

	rows, ok := r.Detail("HSD CARGO 1")
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "Flash Point", rows[0].Test)
	assert.Equal(t, 40.0, *rows[0].HDIPResult)
	assert.Nil(t, rows[0].LoadPortResult)
	assert.Equal(t, 38.0, *rows[0].Min)
	assert.Nil(t, rows[0].Max)
	assert.Equal(t, "°C", rows[0].Unit)
	assert.Equal(t, StatusPass, rows[0].Status)
	assert.True(t, r.Passed())
}

func TestEngine_MixedResults(t *testing.T) {
	sheet := vesselSheet("HSD Cargo", vesselHeader,
		testRow("Flash Point", table.Number(36), table.Number(39)),
		testRow("Density @ 15 °C", table.Number(0.845), table.Number(0.846)),
		testRow("Sulphur Content", table.Text("<0.06"), table.Text("<0.05")),
		testRow("Colour", table.Text("Clear"), table.Empty()),
		testRow("Appearance & Odour", table.Number(1), table.Empty()),
		testRow("", table.Number(1), table.Empty()),
	)

	r := NewEngine(testCatalog()).Run([]table.Sheet{sheet})

	require.Len(t, r.Summaries, 1)
	s := r.Summaries[0]
	assert.Equal(t, 3, s.TestsChecked)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 2, s.Failed)
	assert.Equal(t, StatusFail, s.Overall)
	assert.Equal(t, []string{"Flash Point", "Sulphur Content"}, s.FailedTests)
	assert.False(t, r.Passed())

	rows, _ := r.Detail("HSD Cargo")
	require.Len(t, rows, 3)
	assert.Equal(t, StatusFail, rows[0].Status)
	assert.Equal(t, 39.0, *rows[0].LoadPortResult)
	assert.Equal(t, "Density @ 15 °C", rows[1].Test)
	assert.Equal(t, StatusPass, rows[1].Status)
	assert.Equal(t, 0.06, *rows[2].HDIPResult)

	reasons := map[Reason]int{}
	for _, d := range r.Diagnostics {
		assert.Equal(t, "HSD Cargo", d.Sheet)
		reasons[d.Reason]++
	}
	assert.Equal(t, map[Reason]int{
		ReasonNonNumericResult: 1,
		ReasonNoParameter:      1,
		ReasonEmptyDescription: 1,
	}, reasons)
}

func TestEngine_NoBounds(t *testing.T) {
	sheet := vesselSheet("HSD", vesselHeader, testRow("Colour", table.Number(1), table.Empty()))

	r := NewEngine(testCatalog()).Run([]table.Sheet{sheet})

	require.Len(t, r.Summaries, 1)
	assert.Equal(t, 0, r.Summaries[0].TestsChecked)
	assert.Equal(t, StatusPass, r.Summaries[0].Overall)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, ReasonNoBounds, r.Diagnostics[0].Reason)
	assert.Equal(t, 1, r.Diagnostics[0].Row)
	assert.Equal(t, "Colour", r.Diagnostics[0].Test)
}

func TestEngine_SheetSkips(t *testing.T) {
	noTable := table.Sheet{Name: "HSD notes", Grid: table.Grid{{table.Text("nothing here")}}}
	unknown := vesselSheet("Furnace Oil", vesselHeader, testRow("Flash Point", table.Number(70), table.Empty()))
	noStandard := vesselSheet("MOGAS 92", vesselHeader, testRow("RON", table.Number(92), table.Empty()))
	noResult := vesselSheet("JET A-1", []string{DescriptionColumn, "Value"},
		[]table.Cell{table.Text("Freezing Point"), table.Number(-50)},
	)

	r := NewEngine(testCatalog()).Run([]table.Sheet{noTable, unknown, noStandard, noResult})

	assert.Empty(t, r.Summaries)
	assert.Empty(t, r.Details)
	assert.Equal(t, []Diagnostic{
		{Sheet: "HSD notes", Reason: ReasonNoTable},
		{Sheet: "Furnace Oil", Reason: ReasonUnknownProduct},
		{Sheet: "MOGAS 92", Reason: ReasonNoStandard},
		{Sheet: "JET A-1", Reason: ReasonNoResultColumn},
	}, r.Diagnostics)
	assert.Len(t, r.SkippedSheets(), 4)
}

func TestEngine_MissingDescriptionColumn(t *testing.T) {
	sheet := vesselSheet("HSD", []string{"Test Method", "Result"},
		[]table.Cell{table.Text("ASTM D93"), table.Number(40)},
	)

	r := NewEngine(testCatalog()).Run([]table.Sheet{sheet})

	require.Len(t, r.Summaries, 1)
	assert.Equal(t, 0, r.Summaries[0].TestsChecked)
	assert.Equal(t, ReasonNoDescriptionCol, r.Diagnostics[0].Reason)
	assert.Empty(t, r.SkippedSheets())
}

func TestFindResultColumns(t *testing.T) {
	tests := []struct {
		name      string
		columns   []string
		primary   int
		secondary int
		ok        bool
	}{
		{"hdip and load", []string{"Tests Description", "Load Port Result", "HDIP Result"}, 2, 1, true},
		{"hdip only", []string{"Tests Description", "HDIP result"}, 1, -1, true},
		{"hdip ignores fallback order", []string{"Result A", "HDIP Result", "Result B"}, 1, -1, true},
		{"two generic", []string{"Tests Description", "Result 1", "Result 2", "Result 3"}, 1, 2, true},
		{"generic second beats load", []string{"Result", "Other Result", "Load Result"}, 0, 1, true},
		{"one generic", []string{"Tests Description", "Results"}, 1, -1, true},
		{"none", []string{"Tests Description", "Value"}, -1, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, ok := findResultColumns(&table.Table{Columns: tt.columns})
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.primary, cols.primary)
			assert.Equal(t, tt.secondary, cols.secondary)
		})
	}
}

func TestEngine_CustomCutoffs(t *testing.T) {
	sheet := vesselSheet("HSD", vesselHeader, testRow("Flash Pt", table.Number(40), table.Empty()))

	strict := NewEngine(testCatalog(), WithParameterCutoff(0.99)).Run([]table.Sheet{sheet})
	assert.Equal(t, 0, strict.Summaries[0].TestsChecked)

	loose := NewEngine(testCatalog(), WithParameterCutoff(0.5)).Run([]table.Sheet{sheet})
	assert.Equal(t, 1, loose.Summaries[0].TestsChecked)

	none := NewEngine(testCatalog(), WithProductCutoff(1.01)).Run([]table.Sheet{sheet})
	assert.Empty(t, none.Summaries)
}

func TestEngine_SummaryInvariants(t *testing.T) {
	sheets := []table.Sheet{
		vesselSheet("HSD Cargo 1", vesselHeader,
			testRow("Flash Point", table.Number(40), table.Empty()),
			testRow("Sulphur Content", table.Number(0.5), table.Empty()),
		),
		vesselSheet("Jet A1", vesselHeader, testRow("Freezing Point", table.Text("-50"), table.Empty())),
		vesselSheet("Diesel", vesselHeader, testRow("Flash Point", table.Text("n/a"), table.Empty())),
	}

	r := NewEngine(testCatalog()).Run(sheets)

	require.Len(t, r.Summaries, 3)
	for _, s := range r.Summaries {
		assert.Equal(t, s.Passed+s.Failed, s.TestsChecked, s.SheetName)
		assert.Equal(t, s.Failed > 0, s.Overall == StatusFail, s.SheetName)
		assert.Len(t, s.FailedTests, s.Failed, s.SheetName)
	}
	assert.Equal(t, "JET FUEL", r.Summaries[1].Standard)
	assert.Equal(t, StatusPass, r.Summaries[1].Overall)
}

func TestEngine_Idempotent(t *testing.T) {
	sheets := []table.Sheet{
		vesselSheet("HSD Cargo", vesselHeader,
			testRow("Flash Point", table.Number(36), table.Number(39)),
			testRow("Density @ 15°C", table.Number(0.845), table.Empty()),
		),
	}
	e := NewEngine(testCatalog())

	first, second := e.Run(sheets), e.Run(sheets)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Tables(), second.Tables())
}

func TestEngine_NoSheets(t *testing.T) {
	r := NewEngine(testCatalog()).Run(nil)
	assert.NotNil(t, r.Summaries)
	assert.Empty(t, r.Summaries)
	assert.True(t, r.Passed())
}
