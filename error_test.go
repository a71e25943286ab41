package prodscan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/prodscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := prodscan.Errorf(prodscan.ENOTFOUND, "source %q not found", "listing.html")

	assert.Equal(t, prodscan.ENOTFOUND, prodscan.ErrorCode(err))
	assert.Equal(t, "source \"listing.html\" not found", prodscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, prodscan.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, prodscan.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading page: %w", prodscan.Errorf(prodscan.EINVALID, "empty source"))

	assert.Equal(t, prodscan.EINVALID, prodscan.ErrorCode(err))
	assert.Equal(t, "empty source", prodscan.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, prodscan.EINTERNAL, prodscan.ErrorCode(err))
	assert.Equal(t, "Internal error", prodscan.ErrorMessage(err))
}
