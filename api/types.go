// Package api - Request and response envelopes
package api

import (
	"time"

	"quote-engine/adapters/storage"
	"quote-engine/core/types"
)

// PriceRequest is the body of POST /v1/price. The snapshot travels with the
// request so each call prices against one immutable configuration.
type PriceRequest struct {
	// Request is the package to price
	Request types.PackageRequest `json:"request"`

	// Snapshot is the pricing configuration snapshot
	Snapshot types.PricingSnapshot `json:"snapshot"`

	// Persist stores the priced quote when a store is configured
	Persist bool `json:"persist,omitempty"`
}

// PriceResponse is the body of a successful pricing call
type PriceResponse struct {
	// QuoteID is set when the quote was persisted
	QuoteID string `json:"quote_id,omitempty"`

	// Timestamp is when the quote was priced
	Timestamp time.Time `json:"timestamp"`

	// Result is the consolidated priced result
	Result *types.QuoteResult `json:"result"`
}

// StatsRequest is the body of POST /v1/stats
type StatsRequest struct {
	// Series is the usage history, one observation per period
	Series types.UsageSeries `json:"series"`
}

// StatsResponse is the body of a successful statistics call
type StatsResponse struct {
	// Statistics are the extracted summary values
	Statistics types.UsageStatistics `json:"statistics"`
}

// QuoteListResponse is the body of GET /quotes
type QuoteListResponse struct {
	// Quotes are the stored records, newest first
	Quotes []*storage.StoredQuote `json:"quotes"`
}

// ErrorResponse is the error envelope for every endpoint
type ErrorResponse struct {
	// Code is the domain error type when known
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`
}
