package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cgt/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: when invoked by the shell's completion
	// hook the process prints candidates and exits here.
	completion().Complete("ccg")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	calcFlags := map[string]complete.Predictor{
		"policy":   predict.Set{"fifo", "min-cgt"},
		"discount": predict.Nothing,
		"rule":     predict.Set{"calendar", "365d"},
		"year":     predict.Something,
	}
	gainsFlags := map[string]complete.Predictor{
		"w": predict.Nothing,
		"o": predict.Dirs("*"),
	}
	for k, v := range calcFlags {
		gainsFlags[k] = v
	}

	statements := predict.Files("*.csv")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"gains":   {Flags: gainsFlags, Args: statements},
			"log":     {Flags: calcFlags, Args: statements},
			"holding": {Flags: calcFlags, Args: statements},
			"topic":   {Args: predict.Set{"statement", "policies", "discount", "tax-year", "*"}},
		},
	}
}
