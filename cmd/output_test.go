package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/vessel-qa/internal/check"
	"github.com/sells-group/vessel-qa/internal/qa"
)

func TestPrintTable_ListsSkippedSheets(t *testing.T) {
	res := &check.Result{
		ID:       "abc",
		FileName: "Quality_Report_Q3.xlsx",
		Report: &qa.Report{
			Summaries: []qa.SheetSummary{{
				SheetName:    "HSD CARGO 1",
				Product:      "HSD",
				Standard:     "HSD",
				TestsChecked: 2,
				Passed:       1,
				Failed:       1,
				Overall:      qa.StatusFail,
				FailedTests:  []string{"Sulphur"},
			}},
			Diagnostics: []qa.Diagnostic{{Sheet: "Cover", Reason: qa.ReasonNoTable}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, res, formatTable))

	out := buf.String()
	assert.Contains(t, out, "FAILED TESTS")
	assert.Contains(t, out, "Sulphur")
	assert.Contains(t, out, "Cover (no_table)")
	assert.Contains(t, out, "Report abc: Quality_Report_Q3.xlsx (FAIL)")
}

func TestValidFormat(t *testing.T) {
	assert.True(t, validFormat("table"))
	assert.True(t, validFormat("json"))
	assert.True(t, validFormat("yaml"))
	assert.False(t, validFormat("xml"))
}
