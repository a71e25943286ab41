package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/prodscan"
	"github.com/fwojciec/prodscan/bloom"
	"golang.org/x/net/html"
)

// Ensure ArticleExtractor implements prodscan.ArticleExtractor at compile time.
var _ prodscan.ArticleExtractor = (*ArticleExtractor)(nil)

// CardStrategy locates product cards on a listing page.
type CardStrategy struct {
	Name     string
	Selector string

	// CardAttrs are read from the card itself, in order, before its
	// descendants are searched. The first non-blank value is the article.
	CardAttrs []string

	// Article overrides how a single card is read. Nil means CardAttrs,
	// then the article element, then labeled text.
	Article func(card *goquery.Selection) (string, bool)
}

// StrictCards matches elements that are clearly product cards.
func StrictCards() CardStrategy {
	return CardStrategy{
		Name:      "strict",
		Selector:  ".product-card, .product-item, [data-product-id]",
		CardAttrs: []string{"data-product-id", "data-id", "id"},
	}
}

// LooseCards matches generic containers that often hold one product.
func LooseCards() CardStrategy {
	return CardStrategy{
		Name:     "loose",
		Selector: `article, .catalog-item, .item, [itemtype*="Product"]`,
	}
}

const (
	articleElementSelector = "[data-article], [data-sku], .article, .sku"
	expectedArticles       = 64
	expectedMentions       = 256
)

var articleElementAttrs = []string{"data-article", "data-sku"}

// ArticleExtractor finds product identifiers on listing pages.
//
// Card strategies are tried in order; the first one that matches at least
// one card is the only one used. When no card yields an article, every
// element of the document is scanned for labeled article text.
type ArticleExtractor struct {
	strategies []CardStrategy
	opts       options
}

// NewArticleExtractor creates an ArticleExtractor. Unless WithCardStrategies
// is given, StrictCards then LooseCards are used.
func NewArticleExtractor(opts ...Option) *ArticleExtractor {
	o := newOptions(opts)
	strategies := o.cardStrategies
	if strategies == nil {
		strategies = []CardStrategy{StrictCards(), LooseCards()}
	}
	return &ArticleExtractor{
		strategies: slices.Clone(strategies),
		opts:       o,
	}
}

// ExtractArticles returns de-duplicated articles in first-occurrence order.
func (e *ArticleExtractor) ExtractArticles(root *html.Node) (articles []string) {
	defer func() {
		if r := recover(); r != nil {
			e.opts.logger.Error("article extraction failed", "panic", r)
			articles = []string{}
		}
	}()

	if root == nil {
		return []string{}
	}
	doc := goquery.NewDocumentFromNode(root)
	found := bloom.NewSet(expectedArticles)

	for _, s := range e.strategies {
		cards := doc.Find(s.Selector)
		if cards.Length() == 0 {
			continue
		}
		cards.Each(func(_ int, card *goquery.Selection) {
			if article, ok := s.read(card); ok {
				found.Add(article)
			}
		})
		e.opts.logger.Debug("cards matched",
			"strategy", s.Name,
			"cards", cards.Length(),
			"articles", found.Len(),
		)
		break
	}

	if found.Len() == 0 {
		e.scanDocument(doc, found)
	}

	return found.Items()
}

// scanDocument looks for labeled article text in every element. Wrappers
// often carry exactly the text of their only child, so a text that was
// already matched is not matched again.
func (e *ArticleExtractor) scanDocument(doc *goquery.Document, found *bloom.Set) {
	seen := bloom.NewSet(expectedMentions)
	skipped := 0
	doc.Find("*").EachWithBreak(func(i int, el *goquery.Selection) bool {
		if e.opts.maxScanElements > 0 && i >= e.opts.maxScanElements {
			e.opts.logger.Debug("document scan capped", "elements", i)
			return false
		}
		text := el.Text()
		if !prodscan.HasArticleMention(text) {
			return true
		}
		if !seen.Add(text) {
			skipped++
			return true
		}
		if article, ok := prodscan.MatchLabeledToken(text, prodscan.ArticleLabels); ok {
			found.Add(article)
		}
		return true
	})
	e.opts.logger.Debug("document scanned",
		"texts", seen.Len(),
		"repeated", skipped,
		"articles", found.Len(),
	)
}

func (s CardStrategy) read(card *goquery.Selection) (string, bool) {
	if s.Article != nil {
		return s.Article(card)
	}
	return cardArticle(card, s.CardAttrs)
}

// cardArticle extracts the article of a single card. The card's own
// attributes win, then a dedicated article element, then labeled text.
// A dedicated element with a blank value ends the search for that card.
func cardArticle(card *goquery.Selection, cardAttrs []string) (string, bool) {
	if v, ok := firstAttr(card, cardAttrs); ok {
		return v, true
	}

	if el := card.Find(articleElementSelector).First(); el.Length() > 0 {
		if v, ok := firstAttr(el, articleElementAttrs); ok {
			return v, true
		}
		v := strings.TrimSpace(el.Text())
		return v, v != ""
	}

	return prodscan.MatchLabeledToken(card.Text(), prodscan.ArticleLabels)
}

// firstAttr returns the first attribute of s, in the given order, whose
// value is not blank.
func firstAttr(s *goquery.Selection, names []string) (string, bool) {
	for _, name := range names {
		if v, exists := s.Attr(name); exists && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}
