// Package renderer turns a validated devfolio.Portfolio into its output
// documents: the self-contained HTML page and a markdown summary for the
// terminal.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/devfolio"
)

//go:embed templates/*
var templates embed.FS

// The templates are compiled in, so parsing them cannot fail at runtime.
var page = template.Must(template.New("portfolio.html").
	Funcs(template.FuncMap{"esc": devfolio.EscapeHTML}).
	ParseFS(templates, "templates/portfolio.html"))

var summary = template.Must(template.New("summary.md").
	ParseFS(templates, "templates/summary.md"))

// HTML renders the portfolio to a complete, self-contained HTML document.
//
// Every user-supplied string is passed through devfolio.EscapeHTML on its
// way into the document; this is the sole injection-prevention mechanism.
// The portfolio is not mutated. Rendering a portfolio without any project
// is rejected with a ValidationError.
func HTML(p *devfolio.Portfolio) (string, error) {
	if len(p.Projects()) == 0 {
		return "", devfolio.Validationf("Cannot generate HTML for empty portfolio")
	}
	var b strings.Builder
	if err := page.ExecuteTemplate(&b, "portfolio.html", p); err != nil {
		return "", fmt.Errorf("could not render portfolio page: %w", err)
	}
	return b.String(), nil
}

// Summary renders a markdown overview of the portfolio, suitable for
// terminal display. Unlike HTML it accepts an empty project list.
func Summary(p *devfolio.Portfolio) string {
	var b strings.Builder
	if err := summary.ExecuteTemplate(&b, "summary.md", p); err != nil {
		return fmt.Sprintf("error executing template %q: %v", "summary.md", err)
	}
	return b.String()
}
