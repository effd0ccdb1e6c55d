package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cgt/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "print help about a topic" }
func (*topicCmd) Usage() string {
	return `topic [<name>...]

  Prints the documentation for the given topics, or the list of available
  topics when called without argument. Use '*' to print them all.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		content, err := docs.GetTopic("readme")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		printMarkdown(content)
		return subcommands.ExitSuccess
	}

	content, err := docs.GetTopics(f.Args()...)
	if err != nil {
		topics, _ := docs.GetAllTopics()
		fmt.Fprintf(os.Stderr, "Error: %v. Available topics: %s\n", err, strings.Join(topics, ", "))
		return subcommands.ExitUsageError
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
