// Package usage loads historical usage series from YAML files.
// The file format mirrors what metering exports produce: a unit label and
// one observation per billing period. The engine consumes only the parsed
// numeric series.
package usage

import (
	"os"

	"gopkg.in/yaml.v3"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

// File is a parsed usage file
type File struct {
	// Unit labels what the observations measure (e.g. "gb", "api-calls")
	Unit string `yaml:"unit"`

	// Series holds one observation per period, oldest first
	Series []float64 `yaml:"series"`
}

// Load reads a usage series from a YAML file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("read usage file", err)
	}
	return Parse(data)
}

// Parse decodes a usage series from YAML source
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Parsing("decode usage file", err)
	}
	if len(file.Series) == 0 {
		return nil, errors.Input("usage file has an empty series")
	}
	for i, v := range file.Series {
		if v < 0 {
			return nil, errors.Inputf("usage file: negative observation %g at period %d", v, i)
		}
	}
	return &file, nil
}

// UsageSeries returns the series as the engine's value type
func (f *File) UsageSeries() types.UsageSeries {
	return types.UsageSeries(f.Series)
}
