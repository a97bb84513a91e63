package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var slugReplacer = strings.NewReplacer("/", "-", " ", "-")

// Slug turns a display name into a lowercase path token. Slashes and spaces
// become dashes first and the result is lowercased afterwards; no other
// characters are touched.
func Slug(name string) string {
	return cases.Lower(language.Und).String(slugReplacer.Replace(name))
}

// Truncate shortens s to at most limit runes, marking the cut with "...".
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
