package prodscan

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// AttributeExtractor finds the characteristics of a single product on a
// rendered detail page.
type AttributeExtractor interface {
	// ExtractAttributes returns attribute names mapped to values. When the
	// same name occurs twice the later value wins. It never fails: when
	// nothing plausible is found, or the document can not be scanned, the
	// result is empty.
	ExtractAttributes(doc *html.Node) map[string]string
}

// SplitAttribute splits a "name: value" row at its first colon.
// A colon in the first position does not count as a separator.
// Both sides are trimmed and must be non-empty.
func SplitAttribute(text string) (name, value string, ok bool) {
	text = strings.TrimSpace(text)
	i := strings.Index(text, ":")
	if i <= 0 {
		return "", "", false
	}
	name = strings.TrimSpace(text[:i])
	value = strings.TrimSpace(text[i+1:])
	if name == "" || value == "" {
		return "", "", false
	}
	return name, value, true
}

// TrimAttributeName trims s and strips any trailing colons and whitespace.
func TrimAttributeName(s string) string {
	return strings.TrimRightFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
}
