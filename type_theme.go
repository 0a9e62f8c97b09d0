package devfolio

import "fmt"

// Theme is the two-valued display mode controlling the base colors of the
// generated stylesheet.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

func (t Theme) String() string { return string(t) }

// Background returns the page background color for the theme.
func (t Theme) Background() string {
	if t == Dark {
		return "#121212"
	}
	return "#ffffff"
}

// Foreground returns the base text color for the theme.
func (t Theme) Foreground() string {
	if t == Dark {
		return "#ffffff"
	}
	return "#000000"
}

// resolve maps the theme to a concrete value: dark stays dark, everything
// else (including absent) is light.
func (t Theme) resolve() Theme {
	if t == Dark {
		return Dark
	}
	return Light
}

// ParseTheme parses a theme name. Unlike the lenient resolution applied by
// New, it rejects unknown names so that CLI flags can fail loudly.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return Light, fmt.Errorf("unknown theme %q (expected %q or %q)", s, Light, Dark)
	}
}
