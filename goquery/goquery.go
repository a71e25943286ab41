// Package goquery implements the prodscan extractors with CSS selectors
// evaluated by goquery over an already parsed document tree.
package goquery

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/fwojciec/prodscan"
	"golang.org/x/net/html"
)

// Parse parses raw markup into a document tree suitable for the extractors.
func Parse(markup string) (*html.Node, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, prodscan.Errorf(prodscan.EINVALID, "failed to parse HTML: %v", err)
	}
	return root, nil
}

// Option configures an extractor.
type Option func(*options)

type options struct {
	logger              *slog.Logger
	maxScanElements     int
	cardStrategies      []CardStrategy
	attributeStrategies []AttributeStrategy
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger that receives diagnostics, including failures
// recovered inside an extraction. Defaults to discarding everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxScanElements caps how many elements the whole-document article
// fallback inspects. Zero, the default, means no cap.
func WithMaxScanElements(n int) Option {
	return func(o *options) {
		o.maxScanElements = n
	}
}

// WithCardStrategies replaces the card strategies of an ArticleExtractor.
func WithCardStrategies(strategies ...CardStrategy) Option {
	return func(o *options) {
		o.cardStrategies = slices.Clone(strategies)
	}
}

// WithAttributeStrategies replaces the strategies of an AttributeExtractor.
func WithAttributeStrategies(strategies ...AttributeStrategy) Option {
	return func(o *options) {
		o.attributeStrategies = slices.Clone(strategies)
	}
}
