package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configFile string // Optional YAML file with variance settings

// NewRootCmd builds the ginstats command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ginstats",
		Short: "Variance statistics across GIN sampler runs",
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (flags override its values)")
	root.AddCommand(newVarianceCmd())
	return root
}

// Execute runs the CLI root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
