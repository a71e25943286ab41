package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/net/html"
)

// AttributeReport is the attributes found in one source.
type AttributeReport struct {
	Source     string            `json:"source"`
	Attributes map[string]string `json:"attributes"`
}

// Run executes the attributes command.
func (c *AttributesCmd) Run(deps *Dependencies) error {
	found, err := scan(deps, c.Sources, func(doc *html.Node) map[string]string {
		return deps.Attributes.ExtractAttributes(doc)
	})
	if err != nil {
		return err
	}

	reports := make([]AttributeReport, len(found))
	for i, attrs := range found {
		reports[i] = AttributeReport{Source: c.Sources[i], Attributes: attrs}
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
		// Sorted so repeated runs print identical output.
		for _, name := range slices.Sorted(maps.Keys(r.Attributes)) {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", name, r.Attributes[name])
		}
	}
	return nil
}
