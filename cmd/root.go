package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vessel-qa/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vessel-qa",
	Short: "Vessel fuel quality check against product standards",
	Long:  "Reads a standards workbook and a vessel lab report workbook, checks every test result against its product limits, and writes a PASS/FAIL report workbook.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
