package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/vessel-qa/internal/check"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatTable, formatJSON, formatYAML:
		return true
	}
	return false
}

// printResult writes the run summary to w in the requested format.
func printResult(w io.Writer, res *check.Result, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(res), "check: encode json")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return eris.Wrap(err, "check: encode yaml")
		}
		return eris.Wrap(enc.Close(), "check: encode yaml")
	default:
		return printTable(w, res)
	}
}

func printTable(w io.Writer, res *check.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SHEET\tPRODUCT\tSTANDARD\tCHECKED\tPASSED\tFAILED\tOVERALL\tFAILED TESTS")
	for _, s := range res.Report.Summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			s.SheetName, s.Product, s.Standard,
			s.TestsChecked, s.Passed, s.Failed,
			s.Overall, strings.Join(s.FailedTests, ", "),
		)
	}
	if err := tw.Flush(); err != nil {
		return eris.Wrap(err, "check: write table")
	}

	if skipped := res.Report.SkippedSheets(); len(skipped) > 0 {
		fmt.Fprintf(w, "\nSkipped sheets:\n")
		for _, d := range skipped {
			fmt.Fprintf(w, "  %s (%s)\n", d.Sheet, d.Reason)
		}
	}

	overall := "PASS"
	if !res.Report.Passed() {
		overall = "FAIL"
	}
	fmt.Fprintf(w, "\nReport %s: %s (%s)\n", res.ID, res.FileName, overall)
	return nil
}
