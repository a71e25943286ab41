// Package slog provides logging decorators for the prodscan extractors.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/prodscan"
	"golang.org/x/net/html"
)

// Ensure LoggingArticleExtractor implements prodscan.ArticleExtractor.
var _ prodscan.ArticleExtractor = (*LoggingArticleExtractor)(nil)

// LoggingArticleExtractor wraps an ArticleExtractor with logging.
type LoggingArticleExtractor struct {
	next   prodscan.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingArticleExtractor creates a new LoggingArticleExtractor.
func NewLoggingArticleExtractor(next prodscan.ArticleExtractor, logger *slog.Logger) *LoggingArticleExtractor {
	return &LoggingArticleExtractor{next: next, logger: logger}
}

// ExtractArticles delegates to the wrapped extractor and logs the result size.
func (e *LoggingArticleExtractor) ExtractArticles(doc *html.Node) (articles []string) {
	defer func(begin time.Time) {
		e.logger.Info("extract articles",
			"count", len(articles),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractArticles(doc)
}

// Ensure LoggingAttributeExtractor implements prodscan.AttributeExtractor.
var _ prodscan.AttributeExtractor = (*LoggingAttributeExtractor)(nil)

// LoggingAttributeExtractor wraps an AttributeExtractor with logging.
type LoggingAttributeExtractor struct {
	next   prodscan.AttributeExtractor
	logger *slog.Logger
}

// NewLoggingAttributeExtractor creates a new LoggingAttributeExtractor.
func NewLoggingAttributeExtractor(next prodscan.AttributeExtractor, logger *slog.Logger) *LoggingAttributeExtractor {
	return &LoggingAttributeExtractor{next: next, logger: logger}
}

// ExtractAttributes delegates to the wrapped extractor and logs the result size.
func (e *LoggingAttributeExtractor) ExtractAttributes(doc *html.Node) (attrs map[string]string) {
	defer func(begin time.Time) {
		e.logger.Info("extract attributes",
			"count", len(attrs),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractAttributes(doc)
}
