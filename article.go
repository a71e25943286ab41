package prodscan

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ArticleExtractor finds product identifiers ("articles", SKUs) among the
// product cards of a rendered listing page.
type ArticleExtractor interface {
	// ExtractArticles returns identifiers in first-occurrence order with
	// exact duplicates removed. It never fails: when nothing plausible is
	// found, or the document can not be scanned, the result is empty.
	ExtractArticles(doc *html.Node) []string
}

// ArticleLabels are the label variants that introduce an article in free
// text, tried in order. The label is matched case-insensitively; the
// captured token is not. Any Unicode space separates label and token.
var ArticleLabels = []*regexp.Regexp{
	regexp.MustCompile(`(?i:артикул)[:` + labelSpace + `]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i:арт)[.:` + labelSpace + `]+([A-Za-z0-9-]+)`),
}

// labelSpace is a character class body covering ASCII whitespace, every
// space separator, the line and paragraph separators and the BOM.
const labelSpace = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

// MatchLabeledToken returns the token captured by the first label variant
// that matches text.
func MatchLabeledToken(text string, labels []*regexp.Regexp) (string, bool) {
	for _, re := range labels {
		m := re.FindStringSubmatch(text)
		if len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// HasArticleMention reports whether text literally mentions an article
// label. Only the lowercase and capitalized spellings of the full label and
// the dotted abbreviation count.
func HasArticleMention(text string) bool {
	return strings.Contains(text, "артикул") ||
		strings.Contains(text, "Артикул") ||
		strings.Contains(text, "арт.")
}
