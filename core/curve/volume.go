// Package curve - Volume and term discount curves
// Both resolvers are pure functions of a configuration table and a scalar
// input. They never default on bad configuration; a silently wrong price is
// the worst failure mode in a billing system.
package curve

import (
	"math"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

// ResolveVolumeDiscount resolves the volume discount percentage for a
// quantity against a pricing ladder.
//
// Stepped mode selects the highest threshold at or below the quantity; the
// discount jumps at each threshold. Smooth mode interpolates geometrically
// between the bracketing thresholds: the fraction is computed on the
// logarithm of quantity, so doubling quantity contributes a constant
// increment of progress toward the next tier. Both modes agree exactly at
// every threshold, pin to the top discount above the highest threshold, and
// yield 0% below the lowest.
func ResolveVolumeDiscount(ladder types.PricingLadder, quantity int64) (float64, error) {
	if quantity <= 0 {
		return 0, errors.Inputf("volume curve: non-positive quantity %d", quantity)
	}
	if err := ladder.Validate(); err != nil {
		return 0, err
	}

	steps := ladder.Steps
	if quantity < steps[0].QuantityThreshold {
		return 0, nil
	}

	// Highest step with threshold <= quantity.
	idx := 0
	for i := range steps {
		if steps[i].QuantityThreshold <= quantity {
			idx = i
		}
	}

	if ladder.Mode == types.LadderStepped {
		return steps[idx].DiscountPercent, nil
	}

	// Smooth mode: pinned at the top, exact at thresholds, geometric in
	// between.
	if idx == len(steps)-1 || quantity == steps[idx].QuantityThreshold {
		return steps[idx].DiscountPercent, nil
	}

	lo, hi := steps[idx], steps[idx+1]
	frac := logFraction(quantity, lo.QuantityThreshold, hi.QuantityThreshold)
	return lo.DiscountPercent + frac*(hi.DiscountPercent-lo.DiscountPercent), nil
}

// logFraction returns the position of q between lo and hi on a logarithmic
// scale. Quantities are integral and >= 1, so a zero threshold is treated
// as 1 (log 0 is undefined and unreachable by any real quantity).
func logFraction(q, lo, hi int64) float64 {
	if lo < 1 {
		lo = 1
	}
	logLo := math.Log(float64(lo))
	logHi := math.Log(float64(hi))
	if logHi == logLo {
		return 1
	}
	return (math.Log(float64(q)) - logLo) / (logHi - logLo)
}
