package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/prodscan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Loader     prodscan.PageLoader
	Renderer   prodscan.Renderer // nil unless --render
	Articles   prodscan.ArticleExtractor
	Attributes prodscan.AttributeExtractor

	Format      string
	Concurrency int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Articles   ArticlesCmd   `cmd:"" help:"List product articles found on listing pages"`
	Attributes AttributesCmd `cmd:"" help:"List product attributes found on detail pages"`

	Format      string        `short:"f" enum:"text,json" default:"text" help:"Output format (text, json)"`
	Render      bool          `short:"r" help:"Run page scripts in headless Chrome before extracting"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Render timeout per page"`
	Settle      time.Duration `default:"0s" help:"Extra wait after page load when rendering"`
	Concurrency int           `short:"c" default:"4" env:"PRODSCAN_CONCURRENCY" help:"Pages processed concurrently"`
	MaxScan     int           `name:"max-scan" default:"0" help:"Cap on elements inspected by the whole-page article scan (0 = no cap)"`
	Verbose     bool          `short:"v" help:"Log every step to stderr"`
}

// ArticlesCmd is the "articles" subcommand.
type ArticlesCmd struct {
	Sources []string `arg:"" optional:"" default:"-" help:"HTML files to scan, - for stdin"`
}

// AttributesCmd is the "attributes" subcommand.
type AttributesCmd struct {
	Sources []string `arg:"" optional:"" default:"-" help:"HTML files to scan, - for stdin"`
}
