// Package types - Usage series and statistics
package types

// UsageSeries is an ordered sequence of numeric usage observations, one per
// billing period. It is constructed by an import collaborator and consumed
// read-only by the statistic extractor.
type UsageSeries []float64

// UsageStatistics summarizes a usage series. All fields are derived and
// recomputed whenever the source series changes.
type UsageStatistics struct {
	// Peak is the maximum observation
	Peak float64 `json:"peak"`

	// Average is the arithmetic mean
	Average float64 `json:"average"`

	// P90 is the 90th percentile (nearest-rank)
	P90 float64 `json:"p90"`

	// P95 is the 95th percentile (nearest-rank)
	P95 float64 `json:"p95"`
}
