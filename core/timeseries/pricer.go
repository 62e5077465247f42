// Package timeseries prices commitments from extracted usage statistics.
package timeseries

import (
	"github.com/shopspring/decimal"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

// Price computes the billed monthly amount for a commitment model.
//
// Pay-per-use bills average usage × unit rate every period; cost tracks
// realized usage and no commitment tier is selected. Fixed commitment bills
// the chosen anchoring statistic × unit rate, held constant across all
// periods regardless of actual per-period usage — it is a commitment, not a
// true-up, and that is the defining difference between the two modes.
func Price(statistics types.UsageStatistics, model types.CommitmentModel) (*types.TimeSeriesPricingResult, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	result := &types.TimeSeriesPricingResult{
		Statistics: statistics,
	}

	switch model.Mode {
	case types.CommitmentPayPerUse:
		result.BilledMonthly = model.UnitRate.Mul(decimal.NewFromFloat(statistics.Average))
	case types.CommitmentFixed:
		anchored, err := anchorValue(statistics, model.Anchor)
		if err != nil {
			return nil, err
		}
		result.BilledMonthly = model.UnitRate.Mul(decimal.NewFromFloat(anchored))
		result.CommitmentTierUsed = model.Anchor
	}

	return result, nil
}

// anchorValue selects the statistic a fixed commitment is anchored to.
func anchorValue(statistics types.UsageStatistics, anchor types.CommitmentAnchor) (float64, error) {
	switch anchor {
	case types.AnchorPeak:
		return statistics.Peak, nil
	case types.AnchorAverage:
		return statistics.Average, nil
	case types.AnchorP90:
		return statistics.P90, nil
	case types.AnchorP95:
		return statistics.P95, nil
	default:
		return 0, errors.Configf("unknown commitment anchor %q", anchor)
	}
}
