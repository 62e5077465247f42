// Package cmd - version command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridable at build time
var Version = "1.0.0"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quote-engine version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quote-engine %s\n", Version)
	},
}
