package renderer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/cgt"
)

// LogMarkdown renders the transaction-level detail of a gains report as a
// markdown table, one row per match.
func LogMarkdown(report *cgt.GainsReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transaction Log from %s to %s\n\n", report.Period.From, report.Period.To)

	fmt.Fprintln(&b, "| Security | Bought | Sold | Qty | Cost | Proceeds | Gain | Taxed | Term |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|:---|")
	for _, m := range report.Matches {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			m.Security, m.BuyDate, m.SellDate, m.Quantity,
			m.Cost, m.Proceeds,
			m.Gain.SignedString(), m.Taxed.SignedString(),
			term(m),
		)
	}

	renderOversold(&b, report)

	return b.String()
}

func term(m cgt.Match) string {
	if m.LongTerm {
		return "long"
	}
	return "short"
}

// LogText writes the flat text report: the holdings verification block, one
// line per match, the per-security breakdown and the taxed total. This is the
// content of the exported .txt file.
func LogText(out io.Writer, report *cgt.GainsReport) error {
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "Use the below to verify it matches your portfolio.")
	fmt.Fprintln(w, "Current portfolio - number of shares held")
	fmt.Fprintln(w, "(only displaying securities sold in the reporting year):")
	for _, sec := range report.Securities {
		fmt.Fprintf(w, "    %s: %s\n", sec.Security, sec.Holding)
	}

	fmt.Fprintf(w, "\nTransactions relevant to tax year: %s to %s\n\n", report.Period.From, report.Period.To)
	for _, m := range report.Matches {
		writeMatch(w, m, report.Config)
	}

	fmt.Fprintln(w, "\nCapital Gains per Security Breakdown:")
	for _, sec := range report.Securities {
		fmt.Fprintf(w, "    %s: %s\n", sec.Security, sec.Net)
	}

	fmt.Fprintf(w, "\nTotal Capital Gains (for tax purposes): %s", report.Net)
	if report.Config.ApplyDiscount {
		fmt.Fprint(w, " (includes 12 month 50% CGT reductions)")
	}
	fmt.Fprintln(w)

	if len(report.Oversold) > 0 {
		fmt.Fprintln(w, "\nSkipped securities (bad statement data):")
		for _, oversold := range report.Oversold {
			fmt.Fprintf(w, "    %v\n", oversold)
		}
	}
	return w.Flush()
}

// writeMatch writes the one-line record of a single match.
func writeMatch(w io.Writer, m cgt.Match, cfg cgt.Config) {
	cost := "cost"
	if m.Approx {
		cost = "approx cost"
	}
	fmt.Fprintf(w, "%s: %s shares bought %s, sold %s: %s %s, proceeds %s, ",
		m.Security, m.Quantity, m.BuyDate, m.SellDate, cost, m.Cost, m.Proceeds)

	if m.Gain.IsNegative() {
		fmt.Fprintf(w, "capital loss %s (%s)\n", m.Gain.Abs(), term(m))
		return
	}
	fmt.Fprintf(w, "capital gain %s (%s", m.Gain, term(m))
	if cfg.ApplyDiscount && m.LongTerm {
		fmt.Fprintf(w, ", %s after 50%% discount", m.Taxed)
	}
	fmt.Fprintln(w, ")")
}
