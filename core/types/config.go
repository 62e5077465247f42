// Package types - Pricing configuration value objects
// Configuration is supplied to every pricing call as an immutable snapshot;
// no component reads ambient state.
package types

import (
	"quote-engine/internal/errors"
)

// LadderMode selects how discounts behave between quantity thresholds
type LadderMode string

const (
	// LadderStepped jumps discontinuously at each threshold
	LadderStepped LadderMode = "stepped"

	// LadderSmooth interpolates geometrically between thresholds
	LadderSmooth LadderMode = "smooth"
)

// Valid reports whether the mode is a known ladder mode
func (m LadderMode) Valid() bool {
	return m == LadderStepped || m == LadderSmooth
}

// LadderStep is one rung of a pricing ladder
type LadderStep struct {
	// QuantityThreshold is the quantity at which this discount applies
	QuantityThreshold int64 `json:"quantity_threshold"`

	// DiscountPercent is the volume discount at the threshold (0-100)
	DiscountPercent float64 `json:"discount_percent"`
}

// PricingLadder maps quantity thresholds to volume discount percentages.
// Thresholds must be strictly increasing and discounts non-decreasing:
// selling more never costs a higher effective rate.
type PricingLadder struct {
	Mode  LadderMode   `json:"mode"`
	Steps []LadderStep `json:"steps"`
}

// Validate checks ladder ordering and monotonicity
func (l *PricingLadder) Validate() error {
	if !l.Mode.Valid() {
		return errors.Configf("unknown ladder mode %q", l.Mode)
	}
	if len(l.Steps) == 0 {
		return errors.Config("pricing ladder has no steps")
	}
	for i, step := range l.Steps {
		if step.QuantityThreshold < 0 {
			return errors.Configf("ladder step %d: negative threshold %d", i, step.QuantityThreshold)
		}
		if step.DiscountPercent < 0 || step.DiscountPercent > 100 {
			return errors.Configf("ladder step %d: discount %.2f%% out of range", i, step.DiscountPercent)
		}
		if i > 0 {
			prev := l.Steps[i-1]
			if step.QuantityThreshold <= prev.QuantityThreshold {
				return errors.Configf("ladder thresholds not strictly increasing at step %d", i)
			}
			if step.DiscountPercent < prev.DiscountPercent {
				return errors.Configf("ladder discounts decrease at step %d", i)
			}
		}
	}
	return nil
}

// TermAnchor is one anchor point of a term factor table
type TermAnchor struct {
	// Months is the commitment length at this anchor
	Months int `json:"months"`

	// DiscountPercent is the term discount at the anchor (0-100)
	DiscountPercent float64 `json:"discount_percent"`
}

// TermFactorTable maps commitment lengths to term discount percentages.
// Discounts are linearly interpolated between anchors and pinned to the
// nearest anchor beyond the table's bounds.
type TermFactorTable struct {
	Anchors []TermAnchor `json:"anchors"`
}

// Validate checks anchor ordering
func (t *TermFactorTable) Validate() error {
	if len(t.Anchors) == 0 {
		return errors.Config("term factor table has no anchors")
	}
	for i, anchor := range t.Anchors {
		if anchor.Months <= 0 {
			return errors.Configf("term anchor %d: non-positive months %d", i, anchor.Months)
		}
		if anchor.DiscountPercent < 0 || anchor.DiscountPercent > 100 {
			return errors.Configf("term anchor %d: discount %.2f%% out of range", i, anchor.DiscountPercent)
		}
		if i > 0 && anchor.Months <= t.Anchors[i-1].Months {
			return errors.Configf("term anchors not strictly increasing at anchor %d", i)
		}
	}
	return nil
}

// EnvironmentTable maps deployment environment tags to price multipliers.
// Factors are conceptually in (0, 1] (non-production pays less) but any
// positive multiplier is permitted.
type EnvironmentTable struct {
	Factors map[string]float64 `json:"factors"`
}

// Validate checks that every factor is positive
func (e *EnvironmentTable) Validate() error {
	if len(e.Factors) == 0 {
		return errors.Config("environment table is empty")
	}
	for tag, factor := range e.Factors {
		if factor <= 0 {
			return errors.Configf("environment %q: non-positive factor %g", tag, factor)
		}
	}
	return nil
}

// PricingSnapshot is the immutable configuration for a single pricing call.
// Callers pass a snapshot rather than a live reference so configuration
// changes cannot land mid-calculation.
type PricingSnapshot struct {
	// ID identifies the snapshot for audit records
	ID string `json:"id,omitempty"`

	// Ladder is the volume discount ladder
	Ladder PricingLadder `json:"ladder"`

	// Terms is the term discount table
	Terms TermFactorTable `json:"terms"`

	// Environments is the environment factor table
	Environments EnvironmentTable `json:"environments"`
}

// Validate checks every table in the snapshot
func (s *PricingSnapshot) Validate() error {
	if err := s.Ladder.Validate(); err != nil {
		return err
	}
	if err := s.Terms.Validate(); err != nil {
		return err
	}
	return s.Environments.Validate()
}
