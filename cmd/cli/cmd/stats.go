// Package cmd - stats command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quote-engine/adapters/usage"
	"quote-engine/core/stats"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [usage.yml]",
	Short: "Summarize a usage series",
	Long: `Extract peak, average, P90 and P95 from a usage series file.

These are the statistics commitment-tier pricing anchors to.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	file, err := usage.Load(args[0])
	if err != nil {
		return err
	}

	statistics, err := stats.Extract(file.UsageSeries())
	if err != nil {
		return err
	}

	unit := file.Unit
	if unit == "" {
		unit = "units"
	}
	fmt.Printf("Periods: %d\n", len(file.Series))
	fmt.Printf("Peak:    %.2f %s\n", statistics.Peak, unit)
	fmt.Printf("Average: %.2f %s\n", statistics.Average, unit)
	fmt.Printf("P90:     %.2f %s\n", statistics.P90, unit)
	fmt.Printf("P95:     %.2f %s\n", statistics.P95, unit)
	return nil
}
