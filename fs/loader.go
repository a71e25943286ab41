// Package fs loads page markup from files and standard input.
package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/fwojciec/prodscan"
)

// Stdin is the source name that reads from standard input.
const Stdin = "-"

// Ensure Loader implements prodscan.PageLoader at compile time.
var _ prodscan.PageLoader = (*Loader)(nil)

// Loader reads pages from file paths, or from stdin for the "-" source.
// Stdin can be consumed only once per Loader.
type Loader struct {
	mu       sync.Mutex
	stdin    io.Reader
	consumed bool
}

// NewLoader creates a Loader that reads the "-" source from stdin.
func NewLoader(stdin io.Reader) *Loader {
	return &Loader{stdin: stdin}
}

// Load reads the whole source into a Page.
func (l *Loader) Load(ctx context.Context, source string) (*prodscan.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch source {
	case "":
		return nil, prodscan.Errorf(prodscan.EINVALID, "source required")
	case Stdin:
		return l.loadStdin(source)
	}

	data, err := os.ReadFile(source)
	if errors.Is(err, os.ErrNotExist) {
		return nil, prodscan.Errorf(prodscan.ENOTFOUND, "source %q not found", source)
	} else if err != nil {
		return nil, err
	}

	return &prodscan.Page{Source: source, HTML: string(data)}, nil
}

func (l *Loader) loadStdin(source string) (*prodscan.Page, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stdin == nil {
		return nil, prodscan.Errorf(prodscan.EINVALID, "stdin not available")
	}
	if l.consumed {
		return nil, prodscan.Errorf(prodscan.EINVALID, "stdin already read")
	}
	l.consumed = true

	data, err := io.ReadAll(l.stdin)
	if err != nil {
		return nil, err
	}

	return &prodscan.Page{Source: source, HTML: string(data)}, nil
}
