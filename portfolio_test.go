package devfolio

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// validConfig returns a minimal config that passes New.
func validConfig() Config {
	return Config{
		Name:  "Alice",
		Title: "Developer",
		Bio:   "I build things for the web.",
		Email: "alice@example.com",
	}
}

// validProject returns a project that passes AddProject.
func validProject(id string) Project {
	return Project{
		ID:          id,
		Title:       "Test Project",
		Description: "A demonstration project.",
		URL:         "https://project.com",
	}
}

func TestNew_RequiredFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing name", mutate: func(c *Config) { c.Name = "" }},
		{name: "missing title", mutate: func(c *Config) { c.Title = "" }},
		{name: "missing bio", mutate: func(c *Config) { c.Bio = "" }},
		{name: "missing email", mutate: func(c *Config) { c.Email = "" }},
		{name: "all missing", mutate: func(c *Config) { *c = Config{} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			_, err := New(cfg)
			if err == nil {
				t.Fatal("New() succeeded, want validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("New() returned %T, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), "requires name, title, bio, and email") {
				t.Errorf("New() error = %q, want it to name all four required fields", err)
			}
		})
	}
}

func TestNew_ThemeResolution(t *testing.T) {
	testCases := []struct {
		name  string
		theme Theme
		want  Theme
	}{
		{name: "absent defaults to light", theme: "", want: Light},
		{name: "light stays light", theme: Light, want: Light},
		{name: "dark stays dark", theme: Dark, want: Dark},
		{name: "unknown falls back to light", theme: "sepia", want: Light},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Theme = tc.theme
			p, err := New(cfg)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if got := p.Config().Theme; got != tc.want {
				t.Errorf("theme resolved to %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNew_SocialLinks(t *testing.T) {
	cfg := validConfig()
	cfg.SocialLinks = map[string]string{
		"github":   "https://github.com/alice",
		"linkedin": "not a url",
		"twitter":  "also bad",
	}

	_, err := New(cfg)
	if err == nil {
		t.Fatal("New() succeeded, want validation error")
	}
	// Every offending pair is reported, in platform order.
	want := "invalid social link URLs: linkedin: not a url, twitter: also bad"
	if err.Error() != want {
		t.Errorf("New() error = %q, want %q", err, want)
	}
}

func TestNew_DoesNotAliasConfig(t *testing.T) {
	cfg := validConfig()
	cfg.SocialLinks = map[string]string{"github": "https://github.com/alice"}

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Mutating the caller's map must not reach the portfolio.
	cfg.SocialLinks["github"] = "https://evil.example.com"
	cfg.Name = "Mallory"

	got := p.Config()
	if got.Name != "Alice" {
		t.Errorf("portfolio name = %q, want %q", got.Name, "Alice")
	}
	if got.SocialLinks["github"] != "https://github.com/alice" {
		t.Errorf("portfolio social link = %q, caller mutation leaked in", got.SocialLinks["github"])
	}
}

func TestAddProject_RequiredFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Project)
	}{
		{name: "missing id", mutate: func(p *Project) { p.ID = "" }},
		{name: "missing title", mutate: func(p *Project) { p.Title = "" }},
		{name: "missing description", mutate: func(p *Project) { p.Description = "" }},
		{name: "missing url", mutate: func(p *Project) { p.URL = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(validConfig())
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			project := validProject("1")
			tc.mutate(&project)

			err = p.AddProject(project)
			if err == nil {
				t.Fatal("AddProject() succeeded, want validation error")
			}
			if !strings.Contains(err.Error(), "requires id, title, description, and url") {
				t.Errorf("AddProject() error = %q, want it to name all four required fields", err)
			}
			if len(p.Projects()) != 0 {
				t.Errorf("project list has %d entries after failed add, want 0", len(p.Projects()))
			}
		})
	}
}

func TestAddProject_DuplicateID(t *testing.T) {
	p, err := New(validConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := p.AddProject(validProject("go-thing")); err != nil {
		t.Fatalf("first AddProject() failed: %v", err)
	}

	err = p.AddProject(validProject("go-thing"))
	if err == nil {
		t.Fatal("second AddProject() succeeded, want conflict error")
	}
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("AddProject() returned %T, want *ConflictError", err)
	}
	if !strings.Contains(err.Error(), "go-thing") {
		t.Errorf("AddProject() error = %q, want it to contain the offending id", err)
	}
	if len(p.Projects()) != 1 {
		t.Errorf("project list has %d entries, want 1", len(p.Projects()))
	}
}

func TestAddProject_InvalidURLs(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Project)
		wantSub []string
	}{
		{
			name:    "unparsable project url",
			mutate:  func(p *Project) { p.URL = "not a url" },
			wantSub: []string{"Test Project", "not a url", "invalid URL"},
		},
		{
			name:    "unparsable image url",
			mutate:  func(p *Project) { p.ImageURL = "broken image" },
			wantSub: []string{"Test Project", "broken image", "invalid image URL"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(validConfig())
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			project := validProject("1")
			tc.mutate(&project)

			err = p.AddProject(project)
			if err == nil {
				t.Fatal("AddProject() succeeded, want validation error")
			}
			for _, sub := range tc.wantSub {
				if !strings.Contains(err.Error(), sub) {
					t.Errorf("AddProject() error = %q, want it to contain %q", err, sub)
				}
			}
			if len(p.Projects()) != 0 {
				t.Errorf("project list has %d entries after failed add, want 0", len(p.Projects()))
			}
		})
	}
}

// TestAddProject_ValidationOrder adds a project violating several rules at
// once and checks the first failing check wins: required fields, then
// duplicate id, then URL validity.
func TestAddProject_ValidationOrder(t *testing.T) {
	p, err := New(validConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := p.AddProject(validProject("1")); err != nil {
		t.Fatalf("AddProject() failed: %v", err)
	}

	// Missing title beats everything else.
	bad := Project{ID: "1", Description: "d", URL: "not a url"}
	if err := p.AddProject(bad); err == nil || !strings.Contains(err.Error(), "requires id, title") {
		t.Errorf("AddProject() error = %v, want the required-fields message first", err)
	}

	// With required fields present, the duplicate id beats the bad URL.
	bad = Project{ID: "1", Title: "t", Description: "d", URL: "not a url"}
	err = p.AddProject(bad)
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Errorf("AddProject() returned %T (%v), want *ConflictError before the URL check", err, err)
	}
}

func TestAddProject_StoresIndependentCopy(t *testing.T) {
	p, err := New(validConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	project := validProject("1")
	project.Technologies = []string{"React", "TypeScript"}
	if err := p.AddProject(project); err != nil {
		t.Fatalf("AddProject() failed: %v", err)
	}

	// Mutating the caller's value must not reach the stored copy.
	project.Title = "Renamed"
	project.Technologies[0] = "Vue"

	stored := p.Projects()[0]
	if stored.Title != "Test Project" {
		t.Errorf("stored title = %q, caller mutation leaked in", stored.Title)
	}
	if !reflect.DeepEqual(stored.Technologies, []string{"React", "TypeScript"}) {
		t.Errorf("stored technologies = %v, caller mutation leaked in", stored.Technologies)
	}
}

func TestProject_Lookup(t *testing.T) {
	p, err := New(validConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := p.AddProject(validProject("1")); err != nil {
		t.Fatalf("AddProject() failed: %v", err)
	}

	if got := p.Project("1"); got == nil || got.ID != "1" {
		t.Errorf("Project(%q) = %v, want the stored project", "1", got)
	}
	if got := p.Project("missing"); got != nil {
		t.Errorf("Project(%q) = %v, want nil", "missing", got)
	}
}
