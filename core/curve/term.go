// Package curve - Term discount curve
package curve

import (
	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

// ResolveTermDiscount resolves the term discount percentage for a commitment
// length against a term factor table.
//
// The discount is linearly interpolated between the two bracketing anchors;
// term commitments are additive, not multiplicative, in their discount
// effect, so the scale is linear rather than logarithmic. Terms beyond the
// table's bounds pin to the nearest anchor, never extrapolating past it.
// An exact anchor match returns that anchor's configured value.
func ResolveTermDiscount(table types.TermFactorTable, termMonths int) (float64, error) {
	if termMonths <= 0 {
		return 0, errors.Inputf("term curve: non-positive term %d", termMonths)
	}
	if err := table.Validate(); err != nil {
		return 0, err
	}

	anchors := table.Anchors
	if termMonths <= anchors[0].Months {
		return anchors[0].DiscountPercent, nil
	}
	last := anchors[len(anchors)-1]
	if termMonths >= last.Months {
		return last.DiscountPercent, nil
	}

	for i := 0; i < len(anchors)-1; i++ {
		lo, hi := anchors[i], anchors[i+1]
		if termMonths == lo.Months {
			return lo.DiscountPercent, nil
		}
		if termMonths > lo.Months && termMonths < hi.Months {
			frac := float64(termMonths-lo.Months) / float64(hi.Months-lo.Months)
			return lo.DiscountPercent + frac*(hi.DiscountPercent-lo.DiscountPercent), nil
		}
	}

	// Unreachable: bounds are handled above and anchors are strictly
	// increasing.
	return last.DiscountPercent, nil
}
