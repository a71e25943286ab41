//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/prodscan"
	"github.com/fwojciec/prodscan/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_ReplacesBrowserAfterMaxRenders(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxRenders(3))
	require.NoError(t, err)
	defer manager.Close()

	first, err := manager.Browser()
	require.NoError(t, err)

	manager.IncrementPageCount()
	manager.IncrementPageCount()
	manager.IncrementPageCount()

	second, err := manager.Browser()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestBrowserManager_KeepsBrowserBeforeMaxRenders(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxRenders(5))
	require.NoError(t, err)
	defer manager.Close()

	first, err := manager.Browser()
	require.NoError(t, err)

	manager.IncrementPageCount()
	manager.IncrementPageCount()

	same, err := manager.Browser()
	require.NoError(t, err)
	assert.Same(t, first, same)
}

func TestBrowserManager_Browser_AfterClose(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	require.NoError(t, manager.Close())

	_, err = manager.Browser()

	assert.Equal(t, prodscan.EINVALID, prodscan.ErrorCode(err))
	assert.Zero(t, manager.LauncherPID())
}
