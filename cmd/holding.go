package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cgt/renderer"
	"github.com/google/subcommands"
)

type holdingCmd struct {
	calcFlags
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "show the shares still held after all matching" }
func (*holdingCmd) Usage() string {
	return `holding [-policy fifo|min-cgt] [-year <yyyy>] <statement.csv>...

  Shows the residual position per security once every sell has been matched.
  Compare it against your broker's holdings page: a mismatch means the
  statements are incomplete.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) { c.calcFlags.setFlags(f) }

func (c *holdingCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	report, err := c.report(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingMarkdown(report))
	return subcommands.ExitSuccess
}
