// Package lineitem composes the discount curves into a priced line item.
package lineitem

import (
	"github.com/shopspring/decimal"

	"quote-engine/core/curve"
	"quote-engine/core/environment"
	"quote-engine/core/types"
)

var twelve = decimal.NewFromInt(12)

// Price prices a single line item against a configuration snapshot.
//
// Volume and term discounts compose additively on the list price; the
// environment factor applies multiplicatively last:
//
//	unitPrice = listPrice × (1 − (volume + term)/100) × envFactor
//
// When configured discounts sum past 100% the combined discount is clamped
// to 100% (price floors at zero) and the clamp is flagged through
// TotalDiscountPct. That is a representable configuration, not a failure.
func Price(req types.LineItemRequest, snapshot types.PricingSnapshot) (types.PricedLineItem, error) {
	if err := req.Validate(); err != nil {
		return types.PricedLineItem{}, err
	}

	volumePct, err := curve.ResolveVolumeDiscount(snapshot.Ladder, req.Quantity)
	if err != nil {
		return types.PricedLineItem{}, err
	}

	termPct, err := curve.ResolveTermDiscount(snapshot.Terms, req.TermMonths)
	if err != nil {
		return types.PricedLineItem{}, err
	}

	envFactor, err := environment.ResolveFactor(snapshot.Environments, req.Environment)
	if err != nil {
		return types.PricedLineItem{}, err
	}

	totalPct := volumePct + termPct
	if totalPct > 100 {
		totalPct = 100
	}

	multiplier := decimal.NewFromFloat(1 - totalPct/100)
	unitPrice := req.ListPrice.Mul(multiplier).Mul(decimal.NewFromFloat(envFactor))
	monthlyTotal := unitPrice.Mul(decimal.NewFromInt(req.Quantity))

	return types.PricedLineItem{
		SKU:               req.SKU,
		Quantity:          req.Quantity,
		UnitPrice:         unitPrice,
		VolumeDiscountPct: volumePct,
		TermDiscountPct:   termPct,
		EnvironmentFactor: envFactor,
		TotalDiscountPct:  totalPct,
		MonthlyTotal:      monthlyTotal,
		AnnualTotal:       monthlyTotal.Mul(twelve),
	}, nil
}
