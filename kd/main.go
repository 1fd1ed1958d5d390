package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/kessan/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. Returns immediately when not invoked by a shell
	// completion request.
	(&complete.Command{
		Sub: map[string]*complete.Command{
			"build":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"show":   {Flags: map[string]complete.Predictor{"c": predict.Something}},
			"assist": {Flags: map[string]complete.Predictor{"c": predict.Something}},
		},
		Flags: map[string]complete.Predictor{
			"finance-dir": predict.Dirs("*"),
			"price-dir":   predict.Dirs("*"),
			"names-file":  predict.Files("*.csv"),
		},
	}).Complete("kd")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
