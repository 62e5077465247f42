// Package cmd - price command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quote-engine/adapters/catalog"
	"quote-engine/adapters/pricingconfig"
	"quote-engine/adapters/usage"
	"quote-engine/core/engine"
	"quote-engine/core/output"
	"quote-engine/core/types"
	"quote-engine/internal/config"
	"quote-engine/internal/logging"
)

var (
	pricingPath  string
	catalogPath  string
	usagePath    string
	outputFormat string
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price [request.json]",
	Short: "Price a package request",
	Long: `Price a package request against a pricing snapshot.

The request file holds the phase/line-item structure (or a time-series
pricing request). List prices missing from the request are resolved
through the SKU catalog when one is configured.

Examples:
  quote-engine price request.json --pricing pricing.hcl
  quote-engine price request.json --pricing pricing.hcl --catalog catalog.json
  quote-engine price request.json --pricing pricing.hcl --usage usage.yml --format markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&pricingPath, "pricing", "p", "", "pricing snapshot HCL file (default from config)")
	priceCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "SKU catalog JSON file (default from config)")
	priceCmd.Flags().StringVarP(&usagePath, "usage", "u", "", "usage series YAML file for time-series pricing")
	priceCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
}

func runPrice(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	req, err := loadRequest(args[0])
	if err != nil {
		return err
	}

	snapshotPath := pricingPath
	if snapshotPath == "" {
		snapshotPath = cfg.Pricing.SnapshotPath
	}
	snapshot, err := pricingconfig.Load(snapshotPath)
	if err != nil {
		return err
	}
	logging.Debug("pricing snapshot loaded",
		zap.String("path", snapshotPath),
		zap.String("snapshot_id", snapshot.ID))

	if usagePath != "" {
		usageFile, err := usage.Load(usagePath)
		if err != nil {
			return err
		}
		if req.TimeSeries == nil {
			return fmt.Errorf("request has no time_series section for usage file %s", usagePath)
		}
		req.TimeSeries.Series = usageFile.UsageSeries()
	}

	if err := resolveListPrices(req, cfg); err != nil {
		return err
	}

	result, err := engine.Price(*req, *snapshot)
	if err != nil {
		return err
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, result)
}

func loadRequest(path string) (*types.PackageRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	var req types.PackageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &req, nil
}

// resolveListPrices fills missing list prices from the SKU catalog.
func resolveListPrices(req *types.PackageRequest, cfg *config.Config) error {
	path := catalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}

	var cat *catalog.Catalog
	for pi := range req.Phases {
		for ii := range req.Phases[pi].Items {
			item := &req.Phases[pi].Items[ii]
			if item.ListPrice.GreaterThan(decimal.Zero) {
				continue
			}
			if cat == nil {
				loaded, err := catalog.Load(path)
				if err != nil {
					return err
				}
				cat = loaded
			}
			price, err := cat.Resolve(item.SKU)
			if err != nil {
				return err
			}
			item.ListPrice = price
		}
	}
	return nil
}
