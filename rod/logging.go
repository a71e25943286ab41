package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/prodscan"
)

// Ensure LoggingRenderer implements prodscan.Renderer.
var _ prodscan.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   prodscan.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next prodscan.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the input and output size and delegates to the wrapped renderer.
func (r *LoggingRenderer) Render(ctx context.Context, html string) (out string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"in", len(html),
			"bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, html)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}
