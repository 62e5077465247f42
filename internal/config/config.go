// Package config provides application configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"quote-engine/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains catalog configuration
	Catalog CatalogConfig `json:"catalog"`

	// Pricing contains pricing snapshot configuration
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Storage contains quote persistence configuration
	Storage StorageConfig `json:"storage"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains SKU catalog settings
type CatalogConfig struct {
	// Path is the path to the JSON SKU catalog
	Path string `json:"path"`
}

// PricingConfig contains pricing snapshot settings
type PricingConfig struct {
	// SnapshotPath is the path to the HCL pricing configuration
	SnapshotPath string `json:"snapshot_path"`

	// DefaultCurrency is the display currency
	DefaultCurrency string `json:"default_currency"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// ShowBreakdown shows the per-line-item discount breakdown
	ShowBreakdown bool `json:"show_breakdown"`
}

// StorageConfig contains quote persistence settings
type StorageConfig struct {
	// Backend is the storage backend (memory, file, sqlite)
	Backend string `json:"backend"`

	// Path is the storage directory (file) or database path (sqlite)
	Path string `json:"path"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	baseDir := filepath.Join(homeDir, ".quote-engine")

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Path: filepath.Join(baseDir, "catalog.json"),
		},
		Pricing: PricingConfig{
			SnapshotPath:    filepath.Join(baseDir, "pricing.hcl"),
			DefaultCurrency: "USD",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowBreakdown: true,
		},
		Storage: StorageConfig{
			Backend: "file",
			Path:    filepath.Join(baseDir, "quotes"),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
