package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/cgt"
)

func TestCalcFlagsConfig(t *testing.T) {
	c := calcFlags{policy: "min-cgt", discount: true, rule: "365d"}
	cfg, err := c.config()
	if err != nil {
		t.Fatal(err)
	}
	want := cgt.Config{Policy: cgt.MinimizeCGT, ApplyDiscount: true, LongTerm: cgt.Days365}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}

	c = calcFlags{policy: "lifo", rule: "calendar"}
	if _, err := c.config(); err == nil {
		t.Error("unknown policy: want an error")
	}
}

func TestReport(t *testing.T) {
	statement := "Code,Date,Type,Quantity,Total Value ($)\n" +
		"BHP,01/01/2024,Buy,100,1000.00\n" +
		"BHP,01/02/2025,Sell,50,2000.00\n"
	path := filepath.Join(t.TempDir(), "statement.csv")
	if err := os.WriteFile(path, []byte(statement), 0o600); err != nil {
		t.Fatal(err)
	}

	c := calcFlags{policy: "fifo", rule: "calendar"}
	report, err := c.report([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if want := cgt.FinancialYearEnding(2025); report.Period != want {
		t.Errorf("period = %v, want %v derived from the latest sell", report.Period, want)
	}
	if len(report.Securities) != 1 || report.Securities[0].Security != "BHP" {
		t.Errorf("securities = %v, want BHP", report.Securities)
	}

	if _, err := c.report(nil); err == nil {
		t.Error("no statement files: want an error")
	}
}

func TestWriteReports(t *testing.T) {
	l := cgt.NewLedger()
	l.Append(
		cgt.NewBuy(cgt.MustParse("01/01/2024"), "BHP", cgt.Q(100), cgt.M(1000, cgt.DefaultCurrency)),
		cgt.NewSell(cgt.MustParse("01/02/2025"), "BHP", cgt.Q(50), cgt.M(2000, cgt.DefaultCurrency)),
	)
	report := l.CalculateGains(cgt.FinancialYearEnding(2025), cgt.Config{})

	dir := t.TempDir()
	if err := writeReports(dir, report); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"capital_gains_summary_01072024-30062025.csv",
		"capital_gains_summary_01072024-30062025.txt",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected report file %s: %v", name, err)
		}
	}
}
