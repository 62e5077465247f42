package lineitem

import (
	"testing"

	"github.com/shopspring/decimal"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

func testSnapshot() types.PricingSnapshot {
	return types.PricingSnapshot{
		Ladder: types.PricingLadder{
			Mode: types.LadderStepped,
			Steps: []types.LadderStep{
				{QuantityThreshold: 0, DiscountPercent: 0},
				{QuantityThreshold: 50, DiscountPercent: 10},
				{QuantityThreshold: 500, DiscountPercent: 20},
			},
		},
		Terms: types.TermFactorTable{
			Anchors: []types.TermAnchor{
				{Months: 1, DiscountPercent: 0},
				{Months: 12, DiscountPercent: 5},
				{Months: 36, DiscountPercent: 15},
			},
		},
		Environments: types.EnvironmentTable{
			Factors: map[string]float64{
				"production": 1.0,
				"staging":    0.5,
			},
		},
	}
}

func decimalEqual(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, want %s", name, got, want)
	}
}

func TestPriceComposesDiscounts(t *testing.T) {
	// 10% volume + 10% term compose additively, env factor multiplies last:
	// 100 × (1 − 0.20) × 1.0 = 80.
	req := types.LineItemRequest{
		SKU:         "APP-STD",
		ListPrice:   decimal.NewFromInt(100),
		Quantity:    50,
		TermMonths:  24,
		Environment: "production",
	}

	priced, err := Price(req, testSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if priced.VolumeDiscountPct != 10 {
		t.Fatalf("VolumeDiscountPct = %v, want 10", priced.VolumeDiscountPct)
	}
	if priced.TermDiscountPct != 10 {
		t.Fatalf("TermDiscountPct = %v, want 10", priced.TermDiscountPct)
	}
	if priced.TotalDiscountPct != 20 {
		t.Fatalf("TotalDiscountPct = %v, want 20", priced.TotalDiscountPct)
	}
	decimalEqual(t, "UnitPrice", priced.UnitPrice, "80")
	decimalEqual(t, "MonthlyTotal", priced.MonthlyTotal, "4000")
	decimalEqual(t, "AnnualTotal", priced.AnnualTotal, "48000")
}

func TestPriceEnvironmentFactorAppliesLast(t *testing.T) {
	req := types.LineItemRequest{
		SKU:         "APP-STD",
		ListPrice:   decimal.NewFromInt(100),
		Quantity:    50,
		TermMonths:  24,
		Environment: "staging",
	}

	priced, err := Price(req, testSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decimalEqual(t, "UnitPrice", priced.UnitPrice, "40")
	if priced.EnvironmentFactor != 0.5 {
		t.Fatalf("EnvironmentFactor = %v, want 0.5", priced.EnvironmentFactor)
	}
}

func TestPriceClampsDiscountsPast100(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Ladder.Steps = []types.LadderStep{{QuantityThreshold: 1, DiscountPercent: 60}}
	snapshot.Terms.Anchors = []types.TermAnchor{{Months: 1, DiscountPercent: 70}}

	req := types.LineItemRequest{
		SKU:         "APP-STD",
		ListPrice:   decimal.NewFromInt(100),
		Quantity:    10,
		TermMonths:  12,
		Environment: "production",
	}

	priced, err := Price(req, snapshot)
	if err != nil {
		t.Fatalf("clamp must not fail: %v", err)
	}

	// The clamp is flagged through TotalDiscountPct while the component
	// discounts keep their configured values.
	if priced.TotalDiscountPct != 100 {
		t.Fatalf("TotalDiscountPct = %v, want 100", priced.TotalDiscountPct)
	}
	if priced.VolumeDiscountPct != 60 || priced.TermDiscountPct != 70 {
		t.Fatalf("component discounts changed: vol=%v term=%v", priced.VolumeDiscountPct, priced.TermDiscountPct)
	}
	if !priced.UnitPrice.IsZero() {
		t.Fatalf("UnitPrice = %s, want 0", priced.UnitPrice)
	}
	if !priced.MonthlyTotal.IsZero() {
		t.Fatalf("MonthlyTotal = %s, want 0", priced.MonthlyTotal)
	}
}

func TestPriceInvalidInputs(t *testing.T) {
	snapshot := testSnapshot()
	valid := types.LineItemRequest{
		SKU:         "APP-STD",
		ListPrice:   decimal.NewFromInt(100),
		Quantity:    10,
		TermMonths:  12,
		Environment: "production",
	}

	cases := map[string]func(r *types.LineItemRequest){
		"zero list price":     func(r *types.LineItemRequest) { r.ListPrice = decimal.Zero },
		"negative list price": func(r *types.LineItemRequest) { r.ListPrice = decimal.NewFromInt(-1) },
		"zero quantity":       func(r *types.LineItemRequest) { r.Quantity = 0 },
		"zero term":           func(r *types.LineItemRequest) { r.TermMonths = 0 },
		"missing environment": func(r *types.LineItemRequest) { r.Environment = "" },
	}

	for name, mutate := range cases {
		req := valid
		mutate(&req)
		if _, err := Price(req, snapshot); !errors.IsType(err, errors.TypeInput) {
			t.Errorf("%s: want INPUT_ERROR, got %v", name, err)
		}
	}
}

func TestPriceUnknownEnvironmentPassesThrough(t *testing.T) {
	req := types.LineItemRequest{
		SKU:         "APP-STD",
		ListPrice:   decimal.NewFromInt(100),
		Quantity:    10,
		TermMonths:  12,
		Environment: "qa",
	}

	if _, err := Price(req, testSnapshot()); !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("want CONFIG_ERROR, got %v", err)
	}
}
