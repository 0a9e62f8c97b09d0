package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/devfolio"
	"github.com/google/subcommands"
)

type addProjectCmd struct {
	id           string
	title        string
	description  string
	url          string
	imageURL     string
	technologies string
}

func (*addProjectCmd) Name() string     { return "add-project" }
func (*addProjectCmd) Synopsis() string { return "append a project to the definition file" }
func (*addProjectCmd) Usage() string {
	return `fol add-project -id <id> -title <title> -description <text> -url <url> [-image <url>] [-tech <a,b,c>]

  Validates the project against the current definition (required fields,
  absolute URLs, unique id) and appends it to the definition file.
`
}

func (c *addProjectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Unique id of the project")
	f.StringVar(&c.title, "title", "", "Project title")
	f.StringVar(&c.description, "description", "", "Project description")
	f.StringVar(&c.url, "url", "", "Absolute URL of the project")
	f.StringVar(&c.imageURL, "image", "", "Optional absolute URL of an illustration")
	f.StringVar(&c.technologies, "tech", "", "Comma-separated list of technologies")
}

func (c *addProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	def, err := DecodeDefinition()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	project := devfolio.Project{
		ID:          c.id,
		Title:       c.title,
		Description: c.description,
		URL:         c.url,
		ImageURL:    c.imageURL,
	}
	for _, tech := range strings.Split(c.technologies, ",") {
		if tech = strings.TrimSpace(tech); tech != "" {
			project.Technologies = append(project.Technologies, tech)
		}
	}

	// Replaying the definition through a Portfolio gives the new project
	// the exact same validation as the library API.
	p, err := def.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: definition file is not valid: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.AddProject(project); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	def.Projects = append(def.Projects, project)
	if err := devfolio.EncodeDefinitionFile(*definitionFile, def); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended project %q to %s\n", project.ID, *definitionFile)
	return subcommands.ExitSuccess
}
