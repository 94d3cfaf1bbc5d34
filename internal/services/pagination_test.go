package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	t.Run("Defaults Hold", func(t *testing.T) {
		p := ClampPage(1, 10)
		assert.Equal(t, 1, p.Number)
		assert.Equal(t, 10, p.Size)
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("Page Below One", func(t *testing.T) {
		p := ClampPage(0, 10)
		assert.Equal(t, 1, p.Number)

		p = ClampPage(-5, 10)
		assert.Equal(t, 1, p.Number)
	})

	t.Run("Limit Clamped", func(t *testing.T) {
		assert.Equal(t, 1, ClampPage(1, 0).Size)
		assert.Equal(t, 100, ClampPage(1, 500).Size)
	})

	t.Run("Offset", func(t *testing.T) {
		assert.Equal(t, 20, ClampPage(3, 10).Offset())
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
}
