package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/devfolio/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show a terminal overview of the portfolio" }
func (*summaryCmd) Usage() string {
	return `fol summary [-f <file>]

  Builds the portfolio and renders a markdown overview of the owner profile
  and projects to the terminal.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := BuildPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(p))
	return subcommands.ExitSuccess
}
