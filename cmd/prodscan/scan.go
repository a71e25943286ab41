package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/prodscan/goquery"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// scan loads every source, renders it when a renderer is configured, and
// applies extract. Results keep the order of sources. The first failing
// source cancels the rest.
func scan[T any](deps *Dependencies, sources []string, extract func(doc *html.Node) T) ([]T, error) {
	results := make([]T, len(sources))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(deps.Concurrency, 1))

	for i, source := range sources {
		g.Go(func() error {
			doc, err := loadDocument(ctx, deps, source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			results[i] = extract(doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func loadDocument(ctx context.Context, deps *Dependencies, source string) (*html.Node, error) {
	page, err := deps.Loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	markup := page.HTML
	if deps.Renderer != nil {
		if markup, err = deps.Renderer.Render(ctx, markup); err != nil {
			return nil, fmt.Errorf("rendering: %w", err)
		}
	}

	return goquery.Parse(markup)
}
