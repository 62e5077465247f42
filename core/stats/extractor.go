// Package stats reduces a usage series into summary statistics.
package stats

import (
	"math"
	"sort"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

// Extract computes peak, average, P90 and P95 for a usage series.
//
// Percentiles use the nearest-rank method: the series is sorted ascending
// and the value at index ceil(p × (n−1)) is selected. For n=1 every
// percentile is the single observation; an exact landing returns that
// observation with no interpolation.
func Extract(series types.UsageSeries) (types.UsageStatistics, error) {
	if len(series) == 0 {
		return types.UsageStatistics{}, errors.Input("usage series is empty")
	}

	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return types.UsageStatistics{
		Peak:    sorted[len(sorted)-1],
		Average: sum / float64(len(sorted)),
		P90:     nearestRank(sorted, 0.90),
		P95:     nearestRank(sorted, 0.95),
	}, nil
}

// nearestRank selects the percentile value from an ascending-sorted series.
func nearestRank(sorted []float64, percentile float64) float64 {
	idx := int(math.Ceil(percentile * float64(len(sorted)-1)))
	return sorted[idx]
}
