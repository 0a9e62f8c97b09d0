package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/devfolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Calling Complete is a
// no-op except when the shell asks for completions, in which case it
// answers and exits.
func completion() {
	files := predict.Files("*.yml")
	sub := map[string]*complete.Command{}
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	root := &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"f": files},
	}
	root.Complete("fol")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
