package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

func phasedResult() *types.QuoteResult {
	return &types.QuoteResult{
		Mode: types.ModePhased,
		Package: &types.PricedPackage{
			Phases: []types.PricedPhase{
				{
					Name:           "steady-state",
					DurationMonths: 12,
					Items: []types.PricedLineItem{
						{
							SKU:               "APP-STD",
							Quantity:          10,
							UnitPrice:         decimal.NewFromInt(80),
							VolumeDiscountPct: 20,
							EnvironmentFactor: 1.0,
							MonthlyTotal:      decimal.NewFromInt(800),
							AnnualTotal:       decimal.NewFromInt(9600),
						},
					},
					SubtotalMonthly: decimal.NewFromInt(800),
				},
			},
			SubtotalMonthly: decimal.NewFromInt(800),
			SubtotalAnnual:  decimal.NewFromInt(9600),
		},
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("xml"); !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("want CONFIG_ERROR, got %v", err)
	}
}

func TestJSONRenderRoundTrips(t *testing.T) {
	f, err := New(FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, phasedResult()); err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded types.QuoteResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode rendered JSON: %v", err)
	}
	if decoded.Mode != types.ModePhased {
		t.Fatalf("Mode = %q", decoded.Mode)
	}
	if !decoded.Package.SubtotalMonthly.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("SubtotalMonthly = %s", decoded.Package.SubtotalMonthly)
	}
}

func TestCLIRenderShowsTotals(t *testing.T) {
	f, err := New(FormatCLI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, phasedResult()); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"APP-STD", "steady-state", "800.00", "9600.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownRenderUndefinedBreakEven(t *testing.T) {
	f, err := New(FormatMarkdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := phasedResult()
	result.Perpetual = &types.PerpetualComparison{
		UpfrontPrice:     decimal.NewFromInt(5000),
		BreakEvenDefined: false,
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, result); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "never breaks even") {
		t.Fatalf("output missing undefined break-even note:\n%s", buf.String())
	}
}
