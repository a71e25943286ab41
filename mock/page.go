package mock

import (
	"context"

	"github.com/fwojciec/prodscan"
)

var _ prodscan.PageLoader = (*PageLoader)(nil)

// PageLoader is a mock implementation of prodscan.PageLoader.
type PageLoader struct {
	LoadFn func(ctx context.Context, source string) (*prodscan.Page, error)
}

func (l *PageLoader) Load(ctx context.Context, source string) (*prodscan.Page, error) {
	return l.LoadFn(ctx, source)
}

var _ prodscan.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of prodscan.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, html string) (string, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, html string) (string, error) {
	return r.RenderFn(ctx, html)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}
