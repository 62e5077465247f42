// Package types - Pricing request value objects
package types

import (
	"github.com/shopspring/decimal"

	"quote-engine/internal/errors"
)

// LineItemRequest describes one SKU to price. The list price has already
// been resolved by the catalog collaborator.
type LineItemRequest struct {
	// SKU is the catalog item reference
	SKU string `json:"sku"`

	// ListPrice is the undiscounted monthly unit price
	ListPrice decimal.Decimal `json:"list_price"`

	// Quantity is the number of units
	Quantity int64 `json:"quantity"`

	// TermMonths is the commitment length
	TermMonths int `json:"term_months"`

	// Environment is the deployment environment tag
	Environment string `json:"environment"`
}

// Validate checks the request fields are present and positive
func (r *LineItemRequest) Validate() error {
	if r.ListPrice.LessThanOrEqual(decimal.Zero) {
		return errors.Inputf("line item %s: non-positive list price %s", r.SKU, r.ListPrice)
	}
	if r.Quantity <= 0 {
		return errors.Inputf("line item %s: non-positive quantity %d", r.SKU, r.Quantity)
	}
	if r.TermMonths <= 0 {
		return errors.Inputf("line item %s: non-positive term %d", r.SKU, r.TermMonths)
	}
	if r.Environment == "" {
		return errors.Inputf("line item %s: missing environment tag", r.SKU)
	}
	return nil
}

// Phase is a sub-interval of a contract with its own active line items.
// A package's phases partition its total contract length; durations need
// not be equal.
type Phase struct {
	// Name labels the phase (e.g. "ramp", "steady-state")
	Name string `json:"name,omitempty"`

	// DurationMonths is the phase length
	DurationMonths int `json:"duration_months"`

	// Items are the line items active during the phase
	Items []LineItemRequest `json:"items"`
}

// Validate checks the phase duration and items
func (p *Phase) Validate() error {
	if p.DurationMonths <= 0 {
		return errors.Inputf("phase %q: non-positive duration %d", p.Name, p.DurationMonths)
	}
	if len(p.Items) == 0 {
		return errors.Inputf("phase %q: no line items", p.Name)
	}
	for i := range p.Items {
		if err := p.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CommitmentMode selects the time-series billing model
type CommitmentMode string

const (
	// CommitmentPayPerUse bills realized average usage each period
	CommitmentPayPerUse CommitmentMode = "pay_per_use"

	// CommitmentFixed bills a constant amount anchored to a usage statistic
	CommitmentFixed CommitmentMode = "fixed_commitment"
)

// CommitmentAnchor selects which statistic anchors a fixed commitment
type CommitmentAnchor string

const (
	// AnchorPeak guarantees sufficient capacity every period
	AnchorPeak CommitmentAnchor = "peak"

	// AnchorAverage is cheapest and under-provisions high-usage periods
	AnchorAverage CommitmentAnchor = "average"

	// AnchorP90 covers 90% of observed periods
	AnchorP90 CommitmentAnchor = "p90"

	// AnchorP95 covers 95% of observed periods
	AnchorP95 CommitmentAnchor = "p95"
)

// CommitmentModel is the pricing model for time-series mode
type CommitmentModel struct {
	// Mode is pay-per-use or fixed commitment
	Mode CommitmentMode `json:"mode"`

	// Anchor selects the committed statistic (fixed commitment only)
	Anchor CommitmentAnchor `json:"anchor,omitempty"`

	// UnitRate is the price per usage unit per month
	UnitRate decimal.Decimal `json:"unit_rate"`
}

// Validate checks the model is a representable combination
func (m *CommitmentModel) Validate() error {
	if m.UnitRate.LessThanOrEqual(decimal.Zero) {
		return errors.Inputf("commitment model: non-positive unit rate %s", m.UnitRate)
	}
	switch m.Mode {
	case CommitmentPayPerUse:
		if m.Anchor != "" {
			return errors.Input("commitment model: pay-per-use does not take an anchor")
		}
	case CommitmentFixed:
		switch m.Anchor {
		case AnchorPeak, AnchorAverage, AnchorP90, AnchorP95:
		default:
			return errors.Configf("commitment model: unknown anchor %q", m.Anchor)
		}
	default:
		return errors.Configf("commitment model: unknown mode %q", m.Mode)
	}
	return nil
}

// TimeSeriesRequest prices a commitment from historical usage
type TimeSeriesRequest struct {
	// Series is the parsed usage history, one observation per period
	Series UsageSeries `json:"series"`

	// Model selects pay-per-use or a fixed commitment tier
	Model CommitmentModel `json:"model"`
}

// PackageRequest is the top-level input to the pricing orchestrator.
// Phase-based and time-series pricing are mutually exclusive.
type PackageRequest struct {
	// Customer labels the quote for persistence
	Customer string `json:"customer,omitempty"`

	// Phases holds the phase-based contract timeline
	Phases []Phase `json:"phases,omitempty"`

	// TimeSeries holds the usage-history pricing request
	TimeSeries *TimeSeriesRequest `json:"time_series,omitempty"`

	// PerpetualUpfront, when set, requests a one-time-purchase comparison
	PerpetualUpfront *decimal.Decimal `json:"perpetual_upfront,omitempty"`
}
