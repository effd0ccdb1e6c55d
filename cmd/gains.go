package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/cgt"
	"github.com/etnz/cgt/renderer"
	"github.com/google/subcommands"
)

type gainsCmd struct {
	calcFlags
	write bool
	out   string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "compute capital gains for a financial year" }
func (*gainsCmd) Usage() string {
	return `gains [-policy fifo|min-cgt] [-discount] [-rule calendar|365d] [-year <yyyy>] [-w [-o <dir>]] <statement.csv>...

  Computes per-security and total capital gains for the financial year,
  matching each sell against open buy lots. With -w the summary CSV and the
  transaction log are also written next to the statements (or into -o).
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	c.calcFlags.setFlags(f)
	f.BoolVar(&c.write, "w", false, "Write the summary CSV and transaction log files")
	f.StringVar(&c.out, "o", ".", "Directory to write the report files into")
}

func (c *gainsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	report, err := c.report(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GainsMarkdown(report))

	if c.write {
		if err := writeReports(c.out, report); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// writeReports writes the summary CSV and the transaction-level text log,
// named after the reporting period so successive years never collide.
func writeReports(dir string, report *cgt.GainsReport) error {
	id := report.Period.Identifier()

	csvName := filepath.Join(dir, fmt.Sprintf("capital_gains_summary_%s.csv", id))
	cf, err := os.Create(csvName)
	if err != nil {
		return fmt.Errorf("cannot create summary file: %w", err)
	}
	defer cf.Close()
	if err := cgt.ExportSummary(cf, report); err != nil {
		return fmt.Errorf("cannot write summary file: %w", err)
	}

	txtName := filepath.Join(dir, fmt.Sprintf("capital_gains_summary_%s.txt", id))
	tf, err := os.Create(txtName)
	if err != nil {
		return fmt.Errorf("cannot create log file: %w", err)
	}
	defer tf.Close()
	if err := renderer.LogText(tf, report); err != nil {
		return fmt.Errorf("cannot write log file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Summary written to %s\n", csvName)
	fmt.Fprintf(os.Stderr, "Transaction log written to %s\n", txtName)
	return nil
}
