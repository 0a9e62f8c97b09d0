package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/devfolio"
	"github.com/google/subcommands"
)

type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "write a starter portfolio definition file" }
func (*initCmd) Usage() string {
	return `fol init [-force]

  Writes a starter definition file to the path given by -f (portfolio.yml
  by default), with placeholder values for every supported field. Refuses
  to overwrite an existing file unless -force is given.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Overwrite an existing definition file")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		if _, err := os.Stat(*definitionFile); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %q already exists, use -force to overwrite\n", *definitionFile)
			return subcommands.ExitFailure
		}
	}

	def := &devfolio.Definition{
		Portfolio: devfolio.Config{
			Name:  "Your Name",
			Title: "Your Professional Title",
			Bio:   "A short introduction, two or three sentences.",
			Email: "you@example.com",
			Theme: devfolio.Light,
			SocialLinks: map[string]string{
				"github": "https://github.com/you",
			},
		},
		Projects: []devfolio.Project{{
			ID:           "1",
			Title:        "A Project",
			Description:  "What it does and why it matters.",
			URL:          "https://example.com/project",
			Technologies: []string{"Go"},
		}},
	}

	if err := devfolio.EncodeDefinitionFile(*definitionFile, def); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote starter definition to %s\n", *definitionFile)
	return subcommands.ExitSuccess
}
