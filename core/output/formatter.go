// Package output renders priced quote results.
// This package produces human and machine-readable outputs; it never
// recomputes prices.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"quote-engine/core/types"
	"quote-engine/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *types.QuoteResult) error
}

// New returns the formatter for a format tag
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatMarkdown:
		return &markdownFormatter{}, nil
	default:
		return nil, errors.Configf("unknown output format %q", format)
	}
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

type cliFormatter struct{}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	switch result.Mode {
	case types.ModePhased:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PHASE\tSKU\tQTY\tUNIT PRICE\tVOL%\tTERM%\tENV\tMONTHLY")
		for _, p := range result.Package.Phases {
			for _, item := range p.Items {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.2f\t%.2f\t%.2f\t%s\n",
					phaseLabel(p), item.SKU, item.Quantity,
					item.UnitPrice.StringFixed(2),
					item.VolumeDiscountPct, item.TermDiscountPct,
					item.EnvironmentFactor, item.MonthlyTotal.StringFixed(2))
			}
			fmt.Fprintf(tw, "%s\tsubtotal (%d mo)\t\t\t\t\t\t%s\n",
				phaseLabel(p), p.DurationMonths, p.SubtotalMonthly.StringFixed(2))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nBlended monthly: %s\n", result.Package.SubtotalMonthly.StringFixed(2))
		fmt.Fprintf(w, "Blended annual:  %s\n", result.Package.SubtotalAnnual.StringFixed(2))
	case types.ModeTimeSeries:
		ts := result.TimeSeries
		fmt.Fprintf(w, "Usage statistics: peak=%.2f avg=%.2f p90=%.2f p95=%.2f\n",
			ts.Statistics.Peak, ts.Statistics.Average, ts.Statistics.P90, ts.Statistics.P95)
		if ts.CommitmentTierUsed != "" {
			fmt.Fprintf(w, "Commitment tier:  %s\n", ts.CommitmentTierUsed)
		} else {
			fmt.Fprintln(w, "Billing mode:     pay-per-use")
		}
		fmt.Fprintf(w, "Billed monthly:   %s\n", ts.BilledMonthly.StringFixed(2))
	}

	if result.Perpetual != nil {
		fmt.Fprintf(w, "\nPerpetual alternative: %s upfront\n", result.Perpetual.UpfrontPrice.StringFixed(2))
		if result.Perpetual.BreakEvenDefined {
			fmt.Fprintf(w, "Break-even: %s months\n", result.Perpetual.BreakEvenMonths.StringFixed(1))
		} else {
			fmt.Fprintln(w, "Break-even: undefined (zero recurring price)")
		}
	}
	return nil
}

func phaseLabel(p types.PricedPhase) string {
	if p.Name != "" {
		return p.Name
	}
	return "-"
}

type markdownFormatter struct{}

func (f *markdownFormatter) Format() Format { return FormatMarkdown }

func (f *markdownFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	fmt.Fprintln(w, "## Quote")
	fmt.Fprintln(w)

	switch result.Mode {
	case types.ModePhased:
		fmt.Fprintln(w, "| Phase | SKU | Qty | Unit price | Vol % | Term % | Env | Monthly |")
		fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|")
		for _, p := range result.Package.Phases {
			for _, item := range p.Items {
				fmt.Fprintf(w, "| %s | %s | %d | %s | %.2f | %.2f | %.2f | %s |\n",
					phaseLabel(p), item.SKU, item.Quantity,
					item.UnitPrice.StringFixed(2),
					item.VolumeDiscountPct, item.TermDiscountPct,
					item.EnvironmentFactor, item.MonthlyTotal.StringFixed(2))
			}
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "**Blended monthly:** %s  \n", result.Package.SubtotalMonthly.StringFixed(2))
		fmt.Fprintf(w, "**Blended annual:** %s\n", result.Package.SubtotalAnnual.StringFixed(2))
	case types.ModeTimeSeries:
		ts := result.TimeSeries
		fmt.Fprintf(w, "- Peak: %.2f, Average: %.2f, P90: %.2f, P95: %.2f\n",
			ts.Statistics.Peak, ts.Statistics.Average, ts.Statistics.P90, ts.Statistics.P95)
		if ts.CommitmentTierUsed != "" {
			fmt.Fprintf(w, "- Commitment tier: %s\n", ts.CommitmentTierUsed)
		} else {
			fmt.Fprintln(w, "- Billing mode: pay-per-use")
		}
		fmt.Fprintf(w, "- **Billed monthly:** %s\n", ts.BilledMonthly.StringFixed(2))
	}

	if result.Perpetual != nil {
		fmt.Fprintln(w)
		if result.Perpetual.BreakEvenDefined {
			fmt.Fprintf(w, "Perpetual alternative at %s breaks even after %s months.\n",
				result.Perpetual.UpfrontPrice.StringFixed(2),
				result.Perpetual.BreakEvenMonths.StringFixed(1))
		} else {
			fmt.Fprintf(w, "Perpetual alternative at %s never breaks even (zero recurring price).\n",
				result.Perpetual.UpfrontPrice.StringFixed(2))
		}
	}
	return nil
}
