package prodscan

import "context"

// Page is a loaded HTML document and the source it came from.
type Page struct {
	Source string
	HTML   string
}

// PageLoader reads raw page markup from a source such as a file path.
type PageLoader interface {
	Load(ctx context.Context, source string) (*Page, error)
}

// Renderer turns raw markup into the DOM a browser would hold after
// running the page's scripts. The markup is injected into a blank page;
// implementations never navigate to the network.
type Renderer interface {
	// Render returns the serialized DOM after scripts have run.
	// The context controls timeout and cancellation.
	Render(ctx context.Context, html string) (string, error)

	// Close releases browser resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}
