package devfolio

import (
	"net/url"
	"strings"
)

// EscapeHTML escapes text for safe inclusion in the generated document. It
// replaces the five HTML-significant characters with their entity
// equivalents, ampersand first so that ampersands introduced by the other
// substitutions are never re-escaped.
func EscapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#039;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidURL reports whether s parses as an absolute URL (a scheme followed
// by an authority or path). It never panics: any parse failure is false.
func IsValidURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "" || u.Path != "")
}
