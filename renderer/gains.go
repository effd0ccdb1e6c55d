// Package renderer builds the human-readable views of a gains report:
// markdown for the terminal, and the flat text log written next to the
// summary CSV.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cgt"
)

// GainsMarkdown renders the per-security summary of a gains report.
func GainsMarkdown(report *cgt.GainsReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains Report from %s to %s\n\n", report.Period.From, report.Period.To)
	fmt.Fprintf(&b, "Policy: %s\n\n", report.Config.Policy)
	if report.Config.ApplyDiscount {
		fmt.Fprintf(&b, "12-month 50%% discount applied (%s rule).\n\n", report.Config.LongTerm)
	}

	fmt.Fprint(&b, "## Gains per Security\n\n")
	fmt.Fprintln(&b, "| Security | Gains | Losses | Net |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, sec := range report.Securities {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			sec.Security,
			sec.Gains.SignedString(),
			sec.Losses.SignedString(),
			sec.Net.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | **%s** | **%s** | **%s** |\n",
		"Total",
		report.Gains.SignedString(),
		report.Losses.SignedString(),
		report.Net.SignedString(),
	)

	fmt.Fprint(&b, "\n## Split by Holding Period\n\n")
	fmt.Fprintf(&b, "- Long-term net: %s\n", report.LongTerm.SignedString())
	fmt.Fprintf(&b, "- Short-term net: %s\n", report.ShortTerm.SignedString())

	renderOversold(&b, report)

	return b.String()
}

// renderOversold appends the skipped-security section, if any were skipped.
func renderOversold(b *strings.Builder, report *cgt.GainsReport) {
	if len(report.Oversold) == 0 {
		return
	}
	fmt.Fprint(b, "\n## Skipped Securities\n\n")
	for _, oversold := range report.Oversold {
		fmt.Fprintf(b, "- %v\n", oversold)
	}
}
