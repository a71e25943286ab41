//go:build integration

package rod_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/prodscan"
	"github.com/fwojciec/prodscan/goquery"
	"github.com/fwojciec/prodscan/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render_RunsScripts(t *testing.T) {
	t.Parallel()

	renderer, err := rod.NewRenderer()
	require.NoError(t, err)
	defer renderer.Close()

	html, err := renderer.Render(context.Background(), `<!DOCTYPE html>
<html>
<body>
<div id="catalog">Loading...</div>
<script>
var card = document.createElement('div');
card.className = 'product-card';
card.setAttribute('data-product-id', 'JS-' + (40 + 2));
document.getElementById('catalog').replaceChildren(card);
</script>
</body>
</html>`)

	require.NoError(t, err)
	assert.Contains(t, html, `data-product-id="JS-42"`)
	assert.NotContains(t, html, "Loading...")
}

func TestRenderer_Render_FeedsExtractor(t *testing.T) {
	t.Parallel()

	renderer, err := rod.NewRenderer()
	require.NoError(t, err)
	defer renderer.Close()

	html, err := renderer.Render(context.Background(), `<html><body>
<ul id="specs"></ul>
<script>
var ul = document.getElementById('specs');
ul.className = 'specifications';
ul.innerHTML = '<li>Цвет: Белый</li>';
</script>
</body></html>`)
	require.NoError(t, err)

	root, err := goquery.Parse(html)
	require.NoError(t, err)

	attrs := goquery.NewAttributeExtractor().ExtractAttributes(root)
	assert.Equal(t, map[string]string{"Цвет": "Белый"}, attrs)
}

func TestRenderer_Render_ContextCancellation(t *testing.T) {
	t.Parallel()

	renderer, err := rod.NewRenderer()
	require.NoError(t, err)
	defer renderer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = renderer.Render(ctx, "<html></html>")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderer_Close_Idempotent(t *testing.T) {
	t.Parallel()

	renderer, err := rod.NewRenderer()
	require.NoError(t, err)

	require.NoError(t, renderer.Close())
	require.NoError(t, renderer.Close())
}

func TestRenderer_Render_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	renderer, err := rod.NewRenderer()
	require.NoError(t, err)
	require.NoError(t, renderer.Close())

	_, err = renderer.Render(context.Background(), "<html></html>")

	require.Error(t, err)
	assert.Equal(t, prodscan.EINVALID, prodscan.ErrorCode(err))
	assert.True(t, strings.Contains(prodscan.ErrorMessage(err), "closed"))
}
