package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cgt"
)

// HoldingMarkdown renders the shares still held after matching, a
// verification step to compare against the actual portfolio.
// Only securities sold in the reporting period are shown.
func HoldingMarkdown(report *cgt.GainsReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Shares You Still Own\n\n")
	fmt.Fprint(&b, "Compare against your portfolio; only securities sold between ")
	fmt.Fprintf(&b, "%s and %s are shown.\n\n", report.Period.From, report.Period.To)

	fmt.Fprintln(&b, "| Security | Shares |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, sec := range report.Securities {
		fmt.Fprintf(&b, "| %s | %s |\n", sec.Security, sec.Holding)
	}

	renderOversold(&b, report)

	return b.String()
}
