package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/cgt"
)

// report builds the worked example: one long-term discounted gain and one
// short-term gain on BHP, plus an oversold CBA.
func report(t *testing.T) *cgt.GainsReport {
	t.Helper()
	aud := func(v float64) cgt.Money { return cgt.M(v, cgt.DefaultCurrency) }

	l := cgt.NewLedger()
	l.Append(
		cgt.NewBuy(cgt.MustParse("01/01/2024"), "BHP", cgt.Q(100), aud(1000)),
		cgt.NewBuy(cgt.MustParse("01/06/2024"), "BHP", cgt.Q(100), aud(2000)),
		cgt.NewSell(cgt.MustParse("01/02/2025"), "BHP", cgt.Q(150), aud(4500)),
		cgt.NewBuy(cgt.MustParse("01/01/2024"), "CBA", cgt.Q(10), aud(100)),
		cgt.NewSell(cgt.MustParse("01/02/2025"), "CBA", cgt.Q(15), aud(450)),
	)
	return l.CalculateGains(cgt.FinancialYearEnding(2025), cgt.Config{Policy: cgt.FIFO, ApplyDiscount: true})
}

func TestGainsMarkdown(t *testing.T) {
	got := GainsMarkdown(report(t))

	for _, want := range []string{
		"# Capital Gains Report from 01/07/2024 to 30/06/2025",
		"Policy: fifo",
		"12-month 50% discount applied (calendar rule).",
		"| BHP | +$1,500.00 | - | +$1,500.00 |",
		"| **Total** | **+$1,500.00** | **-** | **+$1,500.00** |",
		"- Long-term net: +$1,000.00",
		"- Short-term net: +$500.00",
		"## Skipped Securities",
		"CBA",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GainsMarkdown misses %q in:\n%s", want, got)
		}
	}
}

func TestLogMarkdown(t *testing.T) {
	got := LogMarkdown(report(t))

	for _, want := range []string{
		"# Transaction Log from 01/07/2024 to 30/06/2025",
		"| BHP | 01/01/2024 | 01/02/2025 | 100 | $1,000.00 | $3,000.00 | +$2,000.00 | +$1,000.00 | long |",
		"| BHP | 01/06/2024 | 01/02/2025 | 50 | $1,000.00 | $1,500.00 | +$500.00 | +$500.00 | short |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("LogMarkdown misses %q in:\n%s", want, got)
		}
	}
}

func TestHoldingMarkdown(t *testing.T) {
	got := HoldingMarkdown(report(t))

	for _, want := range []string{
		"# Shares You Still Own",
		"| BHP | 50 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HoldingMarkdown misses %q in:\n%s", want, got)
		}
	}
}

func TestLogText(t *testing.T) {
	var b strings.Builder
	if err := LogText(&b, report(t)); err != nil {
		t.Fatal(err)
	}
	got := b.String()

	for _, want := range []string{
		"Current portfolio - number of shares held",
		"    BHP: 50",
		"Transactions relevant to tax year: 01/07/2024 to 30/06/2025",
		"BHP: 100 shares bought 01/01/2024, sold 01/02/2025: cost $1,000.00, proceeds $3,000.00, capital gain $2,000.00 (long, $1,000.00 after 50% discount)",
		"BHP: 50 shares bought 01/06/2024, sold 01/02/2025: approx cost $1,000.00, proceeds $1,500.00, capital gain $500.00 (short)",
		"Capital Gains per Security Breakdown:",
		"    BHP: $1,500.00",
		"Total Capital Gains (for tax purposes): $1,500.00 (includes 12 month 50% CGT reductions)",
		"Skipped securities (bad statement data):",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("LogText misses %q in:\n%s", want, got)
		}
	}
}
