package main

import (
	"encoding/json"
	"fmt"

	"golang.org/x/net/html"
)

// ArticleReport is the articles found in one source.
type ArticleReport struct {
	Source   string   `json:"source"`
	Articles []string `json:"articles"`
}

// Run executes the articles command.
func (c *ArticlesCmd) Run(deps *Dependencies) error {
	found, err := scan(deps, c.Sources, func(doc *html.Node) []string {
		return deps.Articles.ExtractArticles(doc)
	})
	if err != nil {
		return err
	}

	reports := make([]ArticleReport, len(found))
	for i, articles := range found {
		reports[i] = ArticleReport{Source: c.Sources[i], Articles: articles}
	}

	if deps.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	multi := len(reports) > 1
	for i, r := range reports {
		if multi {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "==> %s <==\n", r.Source)
		}
		for _, a := range r.Articles {
			fmt.Fprintln(deps.Stdout, a)
		}
	}
	return nil
}
