// Package environment resolves deployment environment price factors.
package environment

import (
	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

// ResolveFactor looks up the price multiplier for an environment tag.
// An unknown tag is a configuration error reported to the caller, never a
// silent default, since the factor directly scales the price.
func ResolveFactor(table types.EnvironmentTable, tag string) (float64, error) {
	if err := table.Validate(); err != nil {
		return 0, err
	}
	factor, ok := table.Factors[tag]
	if !ok {
		return 0, errors.Configf("unknown environment %q", tag)
	}
	return factor, nil
}
