// Package perpetual compares a one-time purchase against a recurring stream.
package perpetual

import (
	"github.com/shopspring/decimal"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

// Compare computes the break-even point of a perpetual license against a
// recurring monthly price. The break-even is a pure ratio; no amortization
// schedule or interest is modeled.
//
// A zero recurring price is an expected business scenario (a fully
// discounted subscription), not a bug: the break-even is reported as
// undefined through BreakEvenDefined rather than failing.
func Compare(upfrontPrice, recurringMonthly decimal.Decimal) (types.PerpetualComparison, error) {
	if upfrontPrice.LessThanOrEqual(decimal.Zero) {
		return types.PerpetualComparison{}, errors.Inputf("perpetual: non-positive upfront price %s", upfrontPrice)
	}
	if recurringMonthly.IsNegative() {
		return types.PerpetualComparison{}, errors.Inputf("perpetual: negative recurring price %s", recurringMonthly)
	}

	cmp := types.PerpetualComparison{
		UpfrontPrice:               upfrontPrice,
		RecurringMonthlyEquivalent: recurringMonthly,
	}

	if recurringMonthly.IsZero() {
		return cmp, nil
	}

	cmp.BreakEvenMonths = upfrontPrice.Div(recurringMonthly)
	cmp.BreakEvenDefined = true
	return cmp, nil
}
