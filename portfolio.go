package devfolio

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Config holds the owner metadata of a portfolio.
type Config struct {
	Name        string            `yaml:"name" json:"name"`                                    // Name of the portfolio owner.
	Title       string            `yaml:"title" json:"title"`                                  // Title is the owner's professional headline.
	Bio         string            `yaml:"bio" json:"bio"`                                      // Bio is a short free-text introduction.
	Email       string            `yaml:"email" json:"email"`                                  // Email is the contact address.
	SocialLinks map[string]string `yaml:"social_links,omitempty" json:"socialLinks,omitempty"` // SocialLinks maps a platform name (e.g. "github") to a profile URL.
	Theme       Theme             `yaml:"theme,omitempty" json:"theme,omitempty"`              // Theme selects the stylesheet base colors; empty means light.
}

// clone returns a deep copy of the config, so a Portfolio never aliases
// caller-held state.
func (c Config) clone() Config {
	c.SocialLinks = maps.Clone(c.SocialLinks)
	return c
}

// Portfolio is the aggregate record of an owner config plus an ordered,
// append-only list of projects with unique ids.
type Portfolio struct {
	config   Config
	projects []Project
}

// New validates cfg and returns a Portfolio with an empty project list.
//
// All four of name, title, bio, and email must be non-empty; they are
// reported together. Every non-empty social link URL must be absolute;
// invalid ones are reported together, as "platform: url" pairs in platform
// order. The input config is neither mutated nor aliased: the portfolio
// keeps a deep copy, with the theme resolved to a concrete light or dark.
func New(cfg Config) (*Portfolio, error) {
	if cfg.Name == "" || cfg.Title == "" || cfg.Bio == "" || cfg.Email == "" {
		return nil, Validationf("portfolio config requires name, title, bio, and email")
	}

	var bad []string
	for _, platform := range slices.Sorted(maps.Keys(cfg.SocialLinks)) {
		if link := cfg.SocialLinks[platform]; link != "" && !IsValidURL(link) {
			bad = append(bad, fmt.Sprintf("%s: %s", platform, link))
		}
	}
	if len(bad) > 0 {
		return nil, Validationf("invalid social link URLs: %s", strings.Join(bad, ", "))
	}

	stored := cfg.clone()
	stored.Theme = stored.Theme.resolve()
	return &Portfolio{config: stored}, nil
}

// Config returns the owner configuration, with its theme always resolved.
func (p *Portfolio) Config() Config { return p.config }

// Projects returns the projects in insertion order. The returned slice is
// the portfolio's own; callers must not modify it.
func (p *Portfolio) Projects() []Project { return p.projects }

// Project returns the project with the given id, or nil.
func (p *Portfolio) Project(id string) *Project {
	for i := range p.projects {
		if p.projects[i].ID == id {
			return &p.projects[i]
		}
	}
	return nil
}

// AddProject validates project and appends an independent copy of it to the
// portfolio. Checks run in a fixed order, and the first failure wins:
// required fields, duplicate id, project URL, image URL. A failed call
// leaves the project list untouched.
func (p *Portfolio) AddProject(project Project) error {
	if err := project.validateRequired(); err != nil {
		return err
	}
	if p.Project(project.ID) != nil {
		return Conflictf("project with id %q already exists", project.ID)
	}
	if err := project.validateURLs(); err != nil {
		return err
	}
	p.projects = append(p.projects, project.clone())
	return nil
}
