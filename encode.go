package devfolio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk form of a whole portfolio: the owner config
// plus the project list, as found in a portfolio.yml file. It is plain
// input configuration; the authoritative validation happens when Build
// funnels it through New and AddProject.
type Definition struct {
	Portfolio Config    `yaml:"portfolio"`
	Projects  []Project `yaml:"projects,omitempty"`
}

// DecodeDefinition decodes a YAML definition from r.
func DecodeDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("could not decode definition: %w", err)
	}
	return &def, nil
}

// DecodeDefinitionFile reads and decodes the definition file at path.
func DecodeDefinitionFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open definition file %q: %w", path, err)
	}
	defer f.Close()

	def, err := DecodeDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("in definition file %q: %w", path, err)
	}
	return def, nil
}

// EncodeDefinition writes the definition to w as YAML.
func EncodeDefinition(w io.Writer, def *Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return fmt.Errorf("could not encode definition: %w", err)
	}
	return enc.Close()
}

// EncodeDefinitionFile writes the definition to path, replacing any
// previous content.
func EncodeDefinitionFile(path string, def *Definition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create definition file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeDefinition(f, def)
}

// Build assembles the definition into a validated Portfolio. It stops at
// the first invalid entry, exactly as a sequence of New and AddProject
// calls would.
func (d *Definition) Build() (*Portfolio, error) {
	p, err := New(d.Portfolio)
	if err != nil {
		return nil, err
	}
	for _, project := range d.Projects {
		if err := p.AddProject(project); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Check validates the whole definition and reports every problem at once,
// joined into a single error. Invalid projects are skipped so that later
// duplicates are still detected against the accepted ones.
func (d *Definition) Check() error {
	var errs error
	p, err := New(d.Portfolio)
	if err != nil {
		errs = err
		// Config failed: keep checking projects against an empty portfolio
		// so the user can fix everything in one pass.
		p = &Portfolio{}
	}
	for _, project := range d.Projects {
		if perr := p.AddProject(project); perr != nil {
			errs = errors.Join(errs, perr)
		}
	}
	return errs
}
