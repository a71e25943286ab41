package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/prodscan"
	"golang.org/x/net/html"
)

// Ensure AttributeExtractor implements prodscan.AttributeExtractor at compile time.
var _ prodscan.AttributeExtractor = (*AttributeExtractor)(nil)

// AttributeStrategy is one way of reading product attributes from a page.
// Extract reports ok when the strategy claims the page; later strategies
// are not consulted after that, even if the returned map is empty.
type AttributeStrategy struct {
	Name    string
	Extract func(doc *goquery.Document) (attrs map[string]string, ok bool)
}

// Selectors used by the attribute strategies.
const (
	attributeBlockSelector = `.product-attributes, .product-specs, .specifications, .characteristics, [data-tab="characteristics"]`
	blockRowSelector       = "tr, .attribute-item, .spec-item, li"
	blockNameSelector      = ".attribute-name, .spec-name, .name, th, dt"
	blockValueSelector     = ".attribute-value, .spec-value, .value, td, dd"

	headingSelector    = "h1, h2, h3, h4, h5, h6"
	sectionRowSelector = "li, tr, .item"

	structureSelector      = "dl, table, .attributes, .specifications"
	structureItemSelector  = ".item, li, .row"
	structureNameSelector  = ".name, .label, .key"
	structureValueSelector = ".value, .data"
)

// headingKeywords mark a heading that introduces a characteristics section.
var headingKeywords = []string{"характеристики", "спецификации", "параметры"}

// DefaultAttributeStrategies returns the strategies in the order they are tried.
func DefaultAttributeStrategies() []AttributeStrategy {
	return []AttributeStrategy{
		{Name: "block", Extract: BlockAttributes},
		{Name: "heading", Extract: HeadingAttributes},
		{Name: "structure", Extract: StructuralAttributes},
	}
}

// AttributeExtractor reads product characteristics from detail pages.
// Strategies run in order until one of them claims the page.
type AttributeExtractor struct {
	strategies []AttributeStrategy
	opts       options
}

// NewAttributeExtractor creates an AttributeExtractor. Unless
// WithAttributeStrategies is given, DefaultAttributeStrategies are used.
func NewAttributeExtractor(opts ...Option) *AttributeExtractor {
	o := newOptions(opts)
	strategies := o.attributeStrategies
	if strategies == nil {
		strategies = DefaultAttributeStrategies()
	}
	return &AttributeExtractor{
		strategies: slices.Clone(strategies),
		opts:       o,
	}
}

// ExtractAttributes returns attribute names mapped to values.
func (e *AttributeExtractor) ExtractAttributes(root *html.Node) (attrs map[string]string) {
	defer func() {
		if r := recover(); r != nil {
			e.opts.logger.Error("attribute extraction failed", "panic", r)
			attrs = map[string]string{}
		}
	}()

	if root == nil {
		return map[string]string{}
	}
	doc := goquery.NewDocumentFromNode(root)

	for _, s := range e.strategies {
		found, ok := s.Extract(doc)
		if !ok {
			continue
		}
		e.opts.logger.Debug("attributes matched",
			"strategy", s.Name,
			"attributes", len(found),
		)
		if found == nil {
			return map[string]string{}
		}
		return found
	}

	return map[string]string{}
}

// BlockAttributes reads rows of the first dedicated specifications block.
// A row with both a name and a value element yields a structured pair;
// any other row is split at its first colon. It reports ok whenever a
// block exists, however few pairs it holds.
func BlockAttributes(doc *goquery.Document) (map[string]string, bool) {
	attrs := make(map[string]string)

	block := doc.Find(attributeBlockSelector).First()
	if block.Length() == 0 {
		return attrs, false
	}

	block.Find(blockRowSelector).Each(func(_ int, row *goquery.Selection) {
		nameEl := row.Find(blockNameSelector).First()
		valueEl := row.Find(blockValueSelector).First()

		if nameEl.Length() > 0 && valueEl.Length() > 0 {
			name := prodscan.TrimAttributeName(nameEl.Text())
			value := strings.TrimSpace(valueEl.Text())
			if name != "" && value != "" {
				attrs[name] = value
			}
			return
		}

		if name, value, ok := prodscan.SplitAttribute(row.Text()); ok {
			attrs[name] = value
		}
	})

	return attrs, true
}

// HeadingAttributes finds the first heading that names a characteristics
// section and splits the rows of the element right after it. It reports ok
// only when at least one pair was read.
func HeadingAttributes(doc *goquery.Document) (map[string]string, bool) {
	attrs := make(map[string]string)

	var section *goquery.Selection
	doc.Find(headingSelector).EachWithBreak(func(_ int, h *goquery.Selection) bool {
		text := strings.ToLower(h.Text())
		for _, kw := range headingKeywords {
			if strings.Contains(text, kw) {
				section = h.Next()
				return false
			}
		}
		return true
	})

	if section == nil || section.Length() == 0 {
		return attrs, false
	}

	section.Find(sectionRowSelector).Each(func(_ int, row *goquery.Selection) {
		if name, value, ok := prodscan.SplitAttribute(row.Text()); ok {
			attrs[name] = value
		}
	})

	return attrs, len(attrs) > 0
}

// StructuralAttributes reads name/value pairs from definition lists,
// tables and generic attribute containers anywhere in the document.
func StructuralAttributes(doc *goquery.Document) (map[string]string, bool) {
	attrs := make(map[string]string)

	set := func(name, value string) {
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name != "" && value != "" {
			attrs[name] = value
		}
	}

	doc.Find(structureSelector).Each(func(_ int, el *goquery.Selection) {
		switch goquery.NodeName(el) {
		case "dl":
			el.Find("dt").Each(func(_ int, dt *goquery.Selection) {
				if dd := dt.Next(); goquery.NodeName(dd) == "dd" {
					set(dt.Text(), dd.Text())
				}
			})
		case "table":
			el.Find("tr").Each(func(_ int, row *goquery.Selection) {
				cells := row.Find("td, th")
				if cells.Length() >= 2 {
					set(cells.Eq(0).Text(), cells.Eq(1).Text())
				}
			})
		default:
			el.Find(structureItemSelector).Each(func(_ int, item *goquery.Selection) {
				nameEl := item.Find(structureNameSelector).First()
				valueEl := item.Find(structureValueSelector).First()
				if nameEl.Length() > 0 && valueEl.Length() > 0 {
					set(nameEl.Text(), valueEl.Text())
				}
			})
		}
	})

	return attrs, len(attrs) > 0
}
