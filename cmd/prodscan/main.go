package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/prodscan"
	"github.com/fwojciec/prodscan/fs"
	"github.com/fwojciec/prodscan/goquery"
	"github.com/fwojciec/prodscan/rod"
	scanslog "github.com/fwojciec/prodscan/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	m.Stdin = os.Stdin

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for the "-" source.
	Stdin io.Reader

	// Renderer replaces the headless browser when --render is set.
	// Used by tests; nil launches Chrome.
	Renderer prodscan.Renderer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prodscan"),
		kong.Description("Extract product articles and attributes from rendered shop pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'prodscan --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	concurrency := cli.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Logger:      logger,
		Loader:      fs.NewLoader(m.Stdin),
		Format:      cli.Format,
		Concurrency: concurrency,
	}

	var articles prodscan.ArticleExtractor = goquery.NewArticleExtractor(
		goquery.WithLogger(logger),
		goquery.WithMaxScanElements(cli.MaxScan),
	)
	var attributes prodscan.AttributeExtractor = goquery.NewAttributeExtractor(
		goquery.WithLogger(logger),
	)
	if cli.Verbose {
		articles = scanslog.NewLoggingArticleExtractor(articles, logger)
		attributes = scanslog.NewLoggingAttributeExtractor(attributes, logger)
	}
	deps.Articles = articles
	deps.Attributes = attributes

	if cli.Render {
		renderer := m.Renderer
		if renderer == nil {
			r, err := rod.NewRenderer(
				rod.WithRenderTimeout(cli.Timeout),
				rod.WithSettleDelay(cli.Settle),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			renderer = r
		}
		if cli.Verbose {
			renderer = rod.NewLoggingRenderer(renderer, logger)
		}
		defer renderer.Close()
		deps.Renderer = renderer
	}

	return kongCtx.Run(deps)
}

// newLogger logs to stderr. Without verbose output only failures show up.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
