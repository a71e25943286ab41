package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/prodscan"
	"github.com/fwojciec/prodscan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "listing.html")
		require.NoError(t, os.WriteFile(path, []byte(`<div class="product-card"></div>`), 0644))

		page, err := fs.NewLoader(nil).Load(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, path, page.Source)
		assert.Equal(t, `<div class="product-card"></div>`, page.HTML)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader(nil).Load(context.Background(), filepath.Join(t.TempDir(), "nope.html"))

		require.Error(t, err)
		assert.Equal(t, prodscan.ENOTFOUND, prodscan.ErrorCode(err))
	})

	t.Run("empty source is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader(nil).Load(context.Background(), "")

		assert.Equal(t, prodscan.EINVALID, prodscan.ErrorCode(err))
	})

	t.Run("reads stdin once", func(t *testing.T) {
		t.Parallel()

		l := fs.NewLoader(strings.NewReader("<p>Артикул: 1</p>"))

		page, err := l.Load(context.Background(), fs.Stdin)
		require.NoError(t, err)
		assert.Equal(t, "-", page.Source)
		assert.Equal(t, "<p>Артикул: 1</p>", page.HTML)

		_, err = l.Load(context.Background(), fs.Stdin)
		assert.Equal(t, prodscan.EINVALID, prodscan.ErrorCode(err))
	})

	t.Run("stdin not configured", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader(nil).Load(context.Background(), fs.Stdin)

		assert.Equal(t, prodscan.EINVALID, prodscan.ErrorCode(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewLoader(nil).Load(ctx, "whatever.html")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
