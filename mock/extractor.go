package mock

import (
	"github.com/fwojciec/prodscan"
	"golang.org/x/net/html"
)

var _ prodscan.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of prodscan.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticlesFn func(doc *html.Node) []string
}

func (e *ArticleExtractor) ExtractArticles(doc *html.Node) []string {
	return e.ExtractArticlesFn(doc)
}

var _ prodscan.AttributeExtractor = (*AttributeExtractor)(nil)

// AttributeExtractor is a mock implementation of prodscan.AttributeExtractor.
type AttributeExtractor struct {
	ExtractAttributesFn func(doc *html.Node) map[string]string
}

func (e *AttributeExtractor) ExtractAttributes(doc *html.Node) map[string]string {
	return e.ExtractAttributesFn(doc)
}
