package prodscan_test

import (
	"testing"

	"github.com/fwojciec/prodscan"
	"github.com/stretchr/testify/assert"
)

func TestSplitAttribute(t *testing.T) {
	t.Parallel()

	t.Run("splits at first colon", func(t *testing.T) {
		t.Parallel()

		name, value, ok := prodscan.SplitAttribute("  Цвет: Белый ")

		assert.True(t, ok)
		assert.Equal(t, "Цвет", name)
		assert.Equal(t, "Белый", value)
	})

	t.Run("keeps later colons in value", func(t *testing.T) {
		t.Parallel()

		name, value, ok := prodscan.SplitAttribute("Размер: 10:20")

		assert.True(t, ok)
		assert.Equal(t, "Размер", name)
		assert.Equal(t, "10:20", value)
	})

	t.Run("rejects leading colon", func(t *testing.T) {
		t.Parallel()

		_, _, ok := prodscan.SplitAttribute(": Белый")

		assert.False(t, ok)
	})

	t.Run("rejects empty value", func(t *testing.T) {
		t.Parallel()

		_, _, ok := prodscan.SplitAttribute("Цвет:   ")

		assert.False(t, ok)
	})

	t.Run("rejects text without colon", func(t *testing.T) {
		t.Parallel()

		_, _, ok := prodscan.SplitAttribute("Белый")

		assert.False(t, ok)
	})
}

func TestTrimAttributeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Цвет", prodscan.TrimAttributeName(" Цвет: "))
	assert.Equal(t, "Цвет", prodscan.TrimAttributeName("Цвет ::\n"))
	assert.Equal(t, "a:b", prodscan.TrimAttributeName("a:b"))
	assert.Empty(t, prodscan.TrimAttributeName(" : "))
}
