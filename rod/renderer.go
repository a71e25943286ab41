// Package rod renders page markup in headless Chrome so extractors see the
// DOM a browser would hold after the page's scripts have run.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/prodscan"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultRenderTimeout bounds a single render when the caller's context has
// no earlier deadline.
const DefaultRenderTimeout = 10 * time.Second

// Ensure Renderer implements prodscan.Renderer at compile time.
var _ prodscan.Renderer = (*Renderer)(nil)

// Renderer injects markup into a blank page and serializes the resulting DOM.
// It never navigates, so no network fetch of the page itself happens.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	manager *BrowserManager
	timeout time.Duration
	settle  time.Duration
	closed  atomic.Bool
}

// Option configures a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	timeout     time.Duration
	settle      time.Duration
	managerOpts []ManagerOption
}

// WithRenderTimeout sets the per-render timeout. Defaults to DefaultRenderTimeout.
func WithRenderTimeout(d time.Duration) Option {
	return func(c *rendererConfig) {
		c.timeout = d
	}
}

// WithSettleDelay waits d after the load event before serializing, giving
// asynchronous scripts time to build product cards.
func WithSettleDelay(d time.Duration) Option {
	return func(c *rendererConfig) {
		c.settle = d
	}
}

// WithManagerOptions passes options to the underlying BrowserManager.
func WithManagerOptions(opts ...ManagerOption) Option {
	return func(c *rendererConfig) {
		c.managerOpts = append(c.managerOpts, opts...)
	}
}

// NewRenderer launches a headless Chrome browser and returns a Renderer.
// Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := rendererConfig{timeout: DefaultRenderTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	manager, err := NewBrowserManager(cfg.managerOpts...)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		manager: manager,
		timeout: cfg.timeout,
		settle:  cfg.settle,
	}, nil
}

// Render loads markup into a fresh page and returns the rendered HTML.
func (r *Renderer) Render(ctx context.Context, html string) (string, error) {
	if r.closed.Load() {
		return "", prodscan.Errorf(prodscan.EINVALID, "renderer is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	browser, err := r.manager.Browser()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()
	defer r.manager.IncrementPageCount()

	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if r.settle > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.settle):
		}
	}

	return page.HTML()
}

// Close releases browser resources. Close is safe to call multiple times.
func (r *Renderer) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	return r.manager.Close()
}
