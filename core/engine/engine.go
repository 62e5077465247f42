// Package engine - Top-level pricing orchestrator
// The orchestrator is the only component that branches over pricing mode.
// It validates that inputs are present, dispatches to the phase aggregator
// or the time-series pricer, and attaches the perpetual comparison when
// requested. It performs no arithmetic itself and passes component errors
// through unchanged so the original cause stays visible to the caller.
package engine

import (
	"quote-engine/core/perpetual"
	"quote-engine/core/phase"
	"quote-engine/core/stats"
	"quote-engine/core/timeseries"
	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

// Price prices a full package request against a configuration snapshot.
// Phase-based and time-series pricing are mutually exclusive; requests
// naming both or neither are rejected.
func Price(req types.PackageRequest, snapshot types.PricingSnapshot) (*types.QuoteResult, error) {
	hasPhases := len(req.Phases) > 0
	hasSeries := req.TimeSeries != nil

	switch {
	case hasPhases && hasSeries:
		return nil, errors.Input("package request names both phase-based and time-series pricing")
	case !hasPhases && !hasSeries:
		return nil, errors.Input("package request names no pricing mode")
	}

	result := &types.QuoteResult{}

	if hasPhases {
		pkg, err := phase.Aggregate(req.Phases, snapshot)
		if err != nil {
			return nil, err
		}
		result.Mode = types.ModePhased
		result.Package = pkg
	} else {
		statistics, err := stats.Extract(req.TimeSeries.Series)
		if err != nil {
			return nil, err
		}
		priced, err := timeseries.Price(statistics, req.TimeSeries.Model)
		if err != nil {
			return nil, err
		}
		result.Mode = types.ModeTimeSeries
		result.TimeSeries = priced
	}

	if req.PerpetualUpfront != nil {
		cmp, err := perpetual.Compare(*req.PerpetualUpfront, result.RecurringMonthly())
		if err != nil {
			return nil, err
		}
		result.Perpetual = &cmp
	}

	return result, nil
}
