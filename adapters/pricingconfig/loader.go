// Package pricingconfig loads pricing snapshots from HCL files.
// A snapshot file carries the volume ladder, term anchors and environment
// factors a pricing call runs against. Loading validates every table so a
// malformed snapshot is rejected before it can reach a calculation.
package pricingconfig

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

type snapshotFile struct {
	SnapshotID   string           `hcl:"snapshot_id,optional"`
	Ladder       ladderBlock      `hcl:"ladder,block"`
	Terms        termsBlock       `hcl:"terms,block"`
	Environments environmentBlock `hcl:"environments,block"`
}

type ladderBlock struct {
	Mode  string      `hcl:"mode"`
	Steps []stepBlock `hcl:"step,block"`
}

type stepBlock struct {
	Threshold int64   `hcl:"threshold"`
	Discount  float64 `hcl:"discount"`
}

type termsBlock struct {
	Anchors []anchorBlock `hcl:"anchor,block"`
}

type anchorBlock struct {
	Months   int     `hcl:"months"`
	Discount float64 `hcl:"discount"`
}

type environmentBlock struct {
	Factors map[string]float64 `hcl:"factors"`
}

// Load reads and validates a pricing snapshot from an HCL file
func Load(path string) (*types.PricingSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("read pricing snapshot", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a pricing snapshot from HCL source
func Parse(src []byte, filename string) (*types.PricingSnapshot, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parse pricing snapshot", diags)
	}

	var decoded snapshotFile
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, errors.Parsing("decode pricing snapshot", diags)
	}

	snapshot := toSnapshot(&decoded)
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func toSnapshot(decoded *snapshotFile) *types.PricingSnapshot {
	snapshot := &types.PricingSnapshot{
		ID: decoded.SnapshotID,
		Ladder: types.PricingLadder{
			Mode:  types.LadderMode(decoded.Ladder.Mode),
			Steps: make([]types.LadderStep, 0, len(decoded.Ladder.Steps)),
		},
		Terms: types.TermFactorTable{
			Anchors: make([]types.TermAnchor, 0, len(decoded.Terms.Anchors)),
		},
		Environments: types.EnvironmentTable{
			Factors: decoded.Environments.Factors,
		},
	}

	for _, step := range decoded.Ladder.Steps {
		snapshot.Ladder.Steps = append(snapshot.Ladder.Steps, types.LadderStep{
			QuantityThreshold: step.Threshold,
			DiscountPercent:   step.Discount,
		})
	}
	for _, anchor := range decoded.Terms.Anchors {
		snapshot.Terms.Anchors = append(snapshot.Terms.Anchors, types.TermAnchor{
			Months:          anchor.Months,
			DiscountPercent: anchor.Discount,
		})
	}
	return snapshot
}
