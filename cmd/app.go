// Package cmd implements the CLI application to build a portfolio site.
package cmd

import (
	"flag"

	"github.com/etnz/devfolio"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application. A main package
// registers each of them on a subcommands.Commander and executes the
// user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&checkCmd{},
	&buildCmd{},
	&addProjectCmd{},
	&summaryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var definitionFile = flag.String("f", "portfolio.yml", "Path to the portfolio definition file (YAML format)")

// DecodeDefinition loads the app definition file.
func DecodeDefinition() (*devfolio.Definition, error) {
	return devfolio.DecodeDefinitionFile(*definitionFile)
}

// BuildPortfolio loads the app definition file and assembles it into a
// validated Portfolio.
func BuildPortfolio() (*devfolio.Portfolio, error) {
	def, err := DecodeDefinition()
	if err != nil {
		return nil, err
	}
	return def.Build()
}
