// Package phase aggregates per-phase pricing into a package total.
package phase

import (
	"github.com/shopspring/decimal"

	"quote-engine/core/lineitem"
	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

var twelve = decimal.NewFromInt(12)

// Aggregate prices every phase's line items and blends the phase subtotals
// into a single time-weighted package total:
//
//	subtotalMonthly = Σ(phaseSubtotal_i × duration_i) / Σ(duration_i)
//
// A package spanning a ramp phase and a steady-state phase reports one
// blended run-rate rather than either phase's number. The annual subtotal
// is the weighted monthly subtotal × 12, not a sum of phase annual totals,
// which would double-count the duration weighting. A single-phase package
// reduces to plain unweighted totals.
func Aggregate(phases []types.Phase, snapshot types.PricingSnapshot) (*types.PricedPackage, error) {
	if len(phases) == 0 {
		return nil, errors.Input("package has no phases")
	}

	pkg := &types.PricedPackage{
		Phases: make([]types.PricedPhase, 0, len(phases)),
	}

	weighted := decimal.Zero
	totalMonths := 0

	for i := range phases {
		p := &phases[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}

		priced := types.PricedPhase{
			Name:            p.Name,
			DurationMonths:  p.DurationMonths,
			Items:           make([]types.PricedLineItem, 0, len(p.Items)),
			SubtotalMonthly: decimal.Zero,
		}

		for _, item := range p.Items {
			pricedItem, err := lineitem.Price(item, snapshot)
			if err != nil {
				return nil, err
			}
			priced.Items = append(priced.Items, pricedItem)
			priced.SubtotalMonthly = priced.SubtotalMonthly.Add(pricedItem.MonthlyTotal)
		}

		weighted = weighted.Add(priced.SubtotalMonthly.Mul(decimal.NewFromInt(int64(p.DurationMonths))))
		totalMonths += p.DurationMonths
		pkg.Phases = append(pkg.Phases, priced)
	}

	pkg.SubtotalMonthly = weighted.Div(decimal.NewFromInt(int64(totalMonths)))
	pkg.SubtotalAnnual = pkg.SubtotalMonthly.Mul(twelve)
	return pkg, nil
}
