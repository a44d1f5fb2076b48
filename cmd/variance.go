package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gin-gi/ginstats/stats"
)

var (
	fileCount    int    // Number of sampler runs (files 0..count-1)
	samplesDir   string // Directory holding the result files
	fileTemplate string // Result file name with an {index} placeholder
	sortOrder    string // Ranking of FitnessImprovement: numeric or lexical
	reportFormat string // Output format: text, table or json
	logLevel     string // Log verbosity level
)

func newVarianceCmd() *cobra.Command {
	defaults := stats.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "variance",
		Short: "Report FitnessImprovement and MemoryUsed variance across runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Errors past flag parsing concern values or data, not usage.
			cmd.SilenceUsage = true

			if err := applyConfigFile(cmd, configFile); err != nil {
				return err
			}

			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)

			order, err := stats.ParseSortOrder(sortOrder)
			if err != nil {
				return err
			}
			format, err := stats.ParseFormat(reportFormat)
			if err != nil {
				return err
			}
			cfg := stats.Config{
				Count:    fileCount,
				Dir:      samplesDir,
				Template: fileTemplate,
				Order:    order,
			}
			startTime := time.Now()
			report, err := stats.Aggregate(cfg)
			if err != nil {
				return err
			}
			if err := stats.WriteReport(cmd.OutOrStdout(), report, format); err != nil {
				return err
			}
			logrus.Infof("Aggregated %d runs in %v", len(report.Files), time.Since(startTime))
			return nil
		},
	}

	cmd.Flags().IntVar(&fileCount, "count", defaults.Count, "Number of result files to aggregate")
	cmd.Flags().StringVar(&samplesDir, "dir", defaults.Dir, "Directory containing the result files")
	cmd.Flags().StringVar(&fileTemplate, "template", defaults.Template, "Result file name; "+stats.IndexPlaceholder+" is replaced by the run index")
	cmd.Flags().StringVar(&sortOrder, "sort", defaults.Order.String(), "FitnessImprovement ranking (numeric, lexical)")
	cmd.Flags().StringVar(&reportFormat, "format", string(stats.FormatText), "Output format (text, table, json)")
	cmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	return cmd
}
