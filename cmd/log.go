package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cgt/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	calcFlags
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "show the matched transactions for the financial year" }
func (*logCmd) Usage() string {
	return `log [-policy fifo|min-cgt] [-discount] [-rule calendar|365d] [-year <yyyy>] <statement.csv>...

  Lists every matched buy/sell pair falling within the financial year, with
  its cost, proceeds, gain and holding-period treatment. This is the audit
  trail behind the gains summary.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) { c.calcFlags.setFlags(f) }

func (c *logCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	report, err := c.report(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LogMarkdown(report))
	return subcommands.ExitSuccess
}
