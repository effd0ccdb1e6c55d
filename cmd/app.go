// Package cmd implements the CLI application to compute capital gains from
// CommSec statements.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cgt"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&gainsCmd{}, "reports")
	c.Register(&logCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// calcFlags holds the flags shared by every command that runs the
// calculation: the matching configuration and the reporting year.
type calcFlags struct {
	policy   string
	discount bool
	rule     string
	year     string
}

func (c *calcFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.policy, "policy", cgt.FIFO.String(), "Matching policy (fifo, min-cgt)")
	f.BoolVar(&c.discount, "discount", false, "Apply the 12-month 50% CGT discount to long-term gains")
	f.StringVar(&c.rule, "rule", cgt.CalendarYears.String(), "Long-term boundary rule (calendar, 365d)")
	f.StringVar(&c.year, "year", "", "Financial year by its ending year (e.g. 2025). Defaults to the year of the latest sell.")
}

// config builds the core configuration from the flags.
func (c *calcFlags) config() (cgt.Config, error) {
	policy, err := cgt.ParseMatchingPolicy(c.policy)
	if err != nil {
		return cgt.Config{}, err
	}
	rule, err := cgt.ParseLongTermRule(c.rule)
	if err != nil {
		return cgt.Config{}, err
	}
	return cgt.Config{Policy: policy, ApplyDiscount: c.discount, LongTerm: rule}, nil
}

// report imports the statement files given as arguments and runs the
// calculation. Malformed rows are reported on stderr and skipped.
func (c *calcFlags) report(files []string) (*cgt.GainsReport, error) {
	if len(files) == 0 {
		return nil, errors.New("at least one statement CSV file is required as argument")
	}

	cfg, err := c.config()
	if err != nil {
		return nil, err
	}

	ledger, rowErrs, err := cgt.ImportStatements(files...)
	if err != nil {
		return nil, err
	}
	for _, rowErr := range rowErrs {
		fmt.Fprintf(os.Stderr, "warning: skipping row: %v\n", rowErr)
	}
	if ledger.Len() == 0 {
		return nil, errors.New("no transactions found in the given statements")
	}

	var period cgt.Range
	if c.year != "" {
		period, err = cgt.ParseFinancialYear(c.year)
	} else {
		period, err = ledger.LatestFinancialYear()
	}
	if err != nil {
		return nil, err
	}

	return ledger.CalculateGains(period, cfg), nil
}
