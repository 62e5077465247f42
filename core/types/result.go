// Package types - Priced result value objects
// Results are never mutated after creation; a fresh value is produced per
// pricing call.
package types

import (
	"github.com/shopspring/decimal"
)

// PricedLineItem is the fully itemized result for one line item
type PricedLineItem struct {
	// SKU is the catalog item reference
	SKU string `json:"sku"`

	// Quantity echoes the requested quantity
	Quantity int64 `json:"quantity"`

	// UnitPrice is the discounted per-unit monthly price
	UnitPrice decimal.Decimal `json:"unit_price"`

	// VolumeDiscountPct is the resolved volume discount
	VolumeDiscountPct float64 `json:"volume_discount_pct"`

	// TermDiscountPct is the resolved term discount
	TermDiscountPct float64 `json:"term_discount_pct"`

	// EnvironmentFactor is the applied environment multiplier
	EnvironmentFactor float64 `json:"environment_factor"`

	// TotalDiscountPct is the applied combined discount. It is clamped at
	// 100 when configured discounts sum past it, which is how a clamp is
	// flagged to the caller.
	TotalDiscountPct float64 `json:"total_discount_pct"`

	// MonthlyTotal is unit price times quantity
	MonthlyTotal decimal.Decimal `json:"monthly_total"`

	// AnnualTotal is the monthly total times 12
	AnnualTotal decimal.Decimal `json:"annual_total"`
}

// PricedPhase is one priced phase of the contract timeline
type PricedPhase struct {
	// Name echoes the phase label
	Name string `json:"name,omitempty"`

	// DurationMonths echoes the phase length
	DurationMonths int `json:"duration_months"`

	// Items are the priced line items
	Items []PricedLineItem `json:"items"`

	// SubtotalMonthly is the sum of the items' monthly totals
	SubtotalMonthly decimal.Decimal `json:"subtotal_monthly"`
}

// PricedPackage aggregates priced line items across phases
type PricedPackage struct {
	// Phases are the priced phases in timeline order
	Phases []PricedPhase `json:"phases"`

	// SubtotalMonthly is the duration-weighted blended monthly run-rate
	SubtotalMonthly decimal.Decimal `json:"subtotal_monthly"`

	// SubtotalAnnual is the weighted monthly subtotal times 12
	SubtotalAnnual decimal.Decimal `json:"subtotal_annual"`
}

// PerpetualComparison compares a one-time purchase to the recurring stream
type PerpetualComparison struct {
	// UpfrontPrice is the one-time purchase price
	UpfrontPrice decimal.Decimal `json:"upfront_price"`

	// RecurringMonthlyEquivalent is the recurring price compared against
	RecurringMonthlyEquivalent decimal.Decimal `json:"recurring_monthly_equivalent"`

	// BreakEvenMonths is upfront divided by recurring. Only meaningful when
	// BreakEvenDefined is true.
	BreakEvenMonths decimal.Decimal `json:"break_even_months"`

	// BreakEvenDefined is false when the recurring price is zero; the
	// break-even point is then reported as undefined rather than crashing.
	BreakEvenDefined bool `json:"break_even_defined"`
}

// TimeSeriesPricingResult is the billed outcome of time-series pricing
type TimeSeriesPricingResult struct {
	// BilledMonthly is the amount billed every period
	BilledMonthly decimal.Decimal `json:"billed_monthly"`

	// CommitmentTierUsed names the anchoring statistic for fixed
	// commitments; empty for pay-per-use.
	CommitmentTierUsed CommitmentAnchor `json:"commitment_tier_used,omitempty"`

	// Statistics are the extracted usage statistics the price derives from
	Statistics UsageStatistics `json:"statistics"`
}

// PricingMode tags which pricing path produced a quote result
type PricingMode string

const (
	// ModePhased prices a phase-based contract timeline
	ModePhased PricingMode = "phased"

	// ModeTimeSeries prices a commitment from usage history
	ModeTimeSeries PricingMode = "time_series"
)

// QuoteResult is the consolidated output of the pricing orchestrator
type QuoteResult struct {
	// Mode is the pricing path taken
	Mode PricingMode `json:"mode"`

	// Package holds the phase-based result (phased mode only)
	Package *PricedPackage `json:"package,omitempty"`

	// TimeSeries holds the usage-based result (time-series mode only)
	TimeSeries *TimeSeriesPricingResult `json:"time_series,omitempty"`

	// Perpetual holds the one-time-purchase comparison when requested
	Perpetual *PerpetualComparison `json:"perpetual,omitempty"`
}

// RecurringMonthly returns the recurring monthly amount of whichever
// pricing path was taken.
func (r *QuoteResult) RecurringMonthly() decimal.Decimal {
	switch r.Mode {
	case ModePhased:
		if r.Package != nil {
			return r.Package.SubtotalMonthly
		}
	case ModeTimeSeries:
		if r.TimeSeries != nil {
			return r.TimeSeries.BilledMonthly
		}
	}
	return decimal.Zero
}
