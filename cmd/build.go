package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/devfolio/renderer"
	"github.com/google/subcommands"
)

type buildCmd struct {
	outputFile string
}

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "generate the portfolio HTML page" }
func (*buildCmd) Usage() string {
	return `fol build [-f <file>] [-o <output>]

  Builds the portfolio from the definition file and writes the complete,
  self-contained HTML document. Without -o the document goes to stdout.

Usage Examples:
# Write the site next to the definition.
$ fol build -o index.html

`
}

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file for the HTML document (stdout by default)")
}

func (c *buildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := BuildPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	html, err := renderer.HTML(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile == "" {
		fmt.Print(html)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.outputFile, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", c.outputFile)
	return subcommands.ExitSuccess
}
