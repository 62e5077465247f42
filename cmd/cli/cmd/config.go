// Package cmd - config command
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"quote-engine/internal/config"
)

var configInitPath string

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&configInitPath, "init", "", "write the current configuration to a file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	if configInitPath != "" {
		if err := cfg.Save(configInitPath); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", configInitPath)
		return nil
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
