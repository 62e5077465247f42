package curve

import (
	"math"
	"testing"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

func steppedLadder() types.PricingLadder {
	return types.PricingLadder{
		Mode: types.LadderStepped,
		Steps: []types.LadderStep{
			{QuantityThreshold: 0, DiscountPercent: 0},
			{QuantityThreshold: 100, DiscountPercent: 10},
			{QuantityThreshold: 500, DiscountPercent: 20},
		},
	}
}

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestVolumeStepped(t *testing.T) {
	ladder := steppedLadder()

	cases := []struct {
		quantity int64
		want     float64
	}{
		{1, 0},
		{99, 0},
		{100, 10},
		{250, 10},
		{499, 10},
		{500, 20},
		{10000, 20},
	}
	for _, tc := range cases {
		got, err := ResolveVolumeDiscount(ladder, tc.quantity)
		if err != nil {
			t.Fatalf("quantity %d: unexpected error: %v", tc.quantity, err)
		}
		nearlyEqual(t, "discount", got, tc.want)
	}
}

func TestVolumeSteppedBelowLowestThreshold(t *testing.T) {
	ladder := types.PricingLadder{
		Mode: types.LadderStepped,
		Steps: []types.LadderStep{
			{QuantityThreshold: 10, DiscountPercent: 5},
		},
	}

	got, err := ResolveVolumeDiscount(ladder, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "below threshold", got, 0)

	got, err = ResolveVolumeDiscount(ladder, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "at threshold", got, 5)
}

func TestVolumeSmoothAgreesWithSteppedAtThresholds(t *testing.T) {
	stepped := steppedLadder()
	smooth := stepped
	smooth.Mode = types.LadderSmooth

	for _, step := range stepped.Steps {
		q := step.QuantityThreshold
		if q == 0 {
			q = 1 // quantities are >= 1
		}
		fromStepped, err := ResolveVolumeDiscount(stepped, q)
		if err != nil {
			t.Fatalf("stepped at %d: %v", q, err)
		}
		fromSmooth, err := ResolveVolumeDiscount(smooth, q)
		if err != nil {
			t.Fatalf("smooth at %d: %v", q, err)
		}
		if step.QuantityThreshold > 0 {
			nearlyEqual(t, "threshold agreement", fromSmooth, step.DiscountPercent)
		}
		nearlyEqual(t, "mode agreement", fromSmooth, fromStepped)
	}
}

func TestVolumeSmoothGeometricMidpoint(t *testing.T) {
	// 200 is the geometric midpoint of [100, 400]: ln2/ln4 = 0.5.
	ladder := types.PricingLadder{
		Mode: types.LadderSmooth,
		Steps: []types.LadderStep{
			{QuantityThreshold: 100, DiscountPercent: 10},
			{QuantityThreshold: 400, DiscountPercent: 20},
		},
	}

	got, err := ResolveVolumeDiscount(ladder, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "geometric midpoint", got, 15)
}

func TestVolumeSmoothDoublingIsConstantProgress(t *testing.T) {
	// Between thresholds 1 and 16 each doubling advances the discount by
	// a quarter of the tier gap.
	ladder := types.PricingLadder{
		Mode: types.LadderSmooth,
		Steps: []types.LadderStep{
			{QuantityThreshold: 1, DiscountPercent: 0},
			{QuantityThreshold: 16, DiscountPercent: 40},
		},
	}

	for i, q := range []int64{1, 2, 4, 8, 16} {
		got, err := ResolveVolumeDiscount(ladder, q)
		if err != nil {
			t.Fatalf("quantity %d: %v", q, err)
		}
		nearlyEqual(t, "doubling progress", got, float64(i)*10)
	}
}

func TestVolumeSmoothMonotonicAndPinned(t *testing.T) {
	ladder := steppedLadder()
	ladder.Mode = types.LadderSmooth

	prev := -1.0
	for q := int64(1); q <= 600; q++ {
		got, err := ResolveVolumeDiscount(ladder, q)
		if err != nil {
			t.Fatalf("quantity %d: %v", q, err)
		}
		if got < prev {
			t.Fatalf("discount decreased at quantity %d: %v < %v", q, got, prev)
		}
		prev = got
	}

	pinned, err := ResolveVolumeDiscount(ladder, 1_000_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "pinned above top", pinned, 20)
}

func TestVolumeSingleThresholdLadder(t *testing.T) {
	for _, mode := range []types.LadderMode{types.LadderStepped, types.LadderSmooth} {
		ladder := types.PricingLadder{
			Mode:  mode,
			Steps: []types.LadderStep{{QuantityThreshold: 50, DiscountPercent: 12}},
		}

		below, err := ResolveVolumeDiscount(ladder, 49)
		if err != nil {
			t.Fatalf("%s below: %v", mode, err)
		}
		nearlyEqual(t, "single threshold below", below, 0)

		at, err := ResolveVolumeDiscount(ladder, 50)
		if err != nil {
			t.Fatalf("%s at: %v", mode, err)
		}
		nearlyEqual(t, "single threshold at", at, 12)

		above, err := ResolveVolumeDiscount(ladder, 5000)
		if err != nil {
			t.Fatalf("%s above: %v", mode, err)
		}
		nearlyEqual(t, "single threshold above", above, 12)
	}
}

func TestVolumeInvalidQuantity(t *testing.T) {
	ladder := steppedLadder()

	for _, q := range []int64{0, -5} {
		_, err := ResolveVolumeDiscount(ladder, q)
		if !errors.IsType(err, errors.TypeInput) {
			t.Fatalf("quantity %d: want INPUT_ERROR, got %v", q, err)
		}
	}
}

func TestVolumeMalformedLadder(t *testing.T) {
	cases := map[string]types.PricingLadder{
		"empty": {Mode: types.LadderStepped},
		"unknown mode": {
			Mode:  "cliff",
			Steps: []types.LadderStep{{QuantityThreshold: 1, DiscountPercent: 1}},
		},
		"thresholds not increasing": {
			Mode: types.LadderStepped,
			Steps: []types.LadderStep{
				{QuantityThreshold: 100, DiscountPercent: 5},
				{QuantityThreshold: 100, DiscountPercent: 10},
			},
		},
		"discounts decreasing": {
			Mode: types.LadderStepped,
			Steps: []types.LadderStep{
				{QuantityThreshold: 100, DiscountPercent: 10},
				{QuantityThreshold: 200, DiscountPercent: 5},
			},
		},
	}

	for name, ladder := range cases {
		if _, err := ResolveVolumeDiscount(ladder, 150); !errors.IsType(err, errors.TypeConfig) {
			t.Errorf("%s: want CONFIG_ERROR, got %v", name, err)
		}
	}
}
