package main

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vessel-qa/internal/check"
	"github.com/sells-group/vessel-qa/internal/workbook"
)

var (
	checkStandards string
	checkVessel    string
	checkPeriod    string
	checkOut       string
	checkFormat    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a vessel report workbook against the standards workbook",
	Long: `Evaluates every test row of every product sheet in the vessel report
against the matching standard and writes Quality_Report_<period>.xlsx.

Examples:
  vessel-qa check --standards standards.xlsx --vessel vessel.xlsx --period "September 2025"

  # JSON summary on stdout, report written to ./reports
  vessel-qa check --standards standards.xlsx --vessel vessel.xlsx --period Q3 --out reports --format json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := checkOut
		if out == "" {
			out = cfg.Report.OutputDir
		}
		format := checkFormat
		if format == "" {
			format = cfg.Report.Format
		}
		if !validFormat(format) {
			return eris.Errorf("check: unknown format %q", format)
		}

		res, err := check.Run(cmd.Context(),
			workbook.FileSource(checkStandards),
			workbook.FileSource(checkVessel),
			checkPeriod,
			check.OptionsFromConfig(cfg.Match),
		)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(out, 0o755); err != nil {
			return eris.Wrapf(err, "check: create output dir %s", out)
		}
		path := filepath.Join(out, res.FileName)
		if err := workbook.WriteFile(path, res.Report.Tables()); err != nil {
			return err
		}
		zap.L().Info("check: report written",
			zap.String("report_id", res.ID),
			zap.String("path", path),
			zap.Bool("passed", res.Report.Passed()),
		)

		return printResult(cmd.OutOrStdout(), res, format)
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkStandards, "standards", "", "path to standards workbook (required)")
	checkCmd.Flags().StringVar(&checkVessel, "vessel", "", "path to vessel report workbook (required)")
	checkCmd.Flags().StringVar(&checkPeriod, "period", "", "reporting period, used in the report file name (required)")
	checkCmd.Flags().StringVar(&checkOut, "out", "", "output directory (default from config)")
	checkCmd.Flags().StringVar(&checkFormat, "format", "", "summary format: table, json or yaml (default from config)")
	_ = checkCmd.MarkFlagRequired("standards")
	_ = checkCmd.MarkFlagRequired("vessel")
	_ = checkCmd.MarkFlagRequired("period")
	rootCmd.AddCommand(checkCmd)
}
