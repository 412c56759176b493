package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogDedupes(t *testing.T) {
	c := NewCatalog([]string{"Go", "Python", "go"})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Go", "Python"}, c.Names())
}

func TestCatalogContains(t *testing.T) {
	c := NewCatalog([]string{"Go", "Python"})

	assert.True(t, c.Contains("Go"))
	assert.True(t, c.Contains("PYTHON"))
	assert.False(t, c.Contains("Rust"))
}

func TestCatalogCanonical(t *testing.T) {
	c := NewCatalog([]string{"Python"})

	canonical, ok := c.Canonical("pYtHoN")
	require.True(t, ok)
	assert.Equal(t, "Python", canonical)

	_, ok = c.Canonical("Rust")
	assert.False(t, ok)
}

func TestCatalogValidate(t *testing.T) {
	c := NewCatalog([]string{"Go", "Python", "Rust"})

	t.Run("normalizes to canonical casing in input order", func(t *testing.T) {
		names, err := c.Validate([]string{"python", "GO"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Python", "Go"}, names)
	})

	t.Run("drops duplicates keeping first", func(t *testing.T) {
		names, err := c.Validate([]string{"go", "Go", "rust"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "Rust"}, names)
	})

	t.Run("collects all unknown names", func(t *testing.T) {
		_, err := c.Validate([]string{"go", "nosuch", "alsomissing"})
		require.Error(t, err)
		assert.True(t, IsType(err, UnknownTemplate))

		rerr := err.(*Error)
		assert.Equal(t, []string{"nosuch", "alsomissing"}, rerr.Names)
	})

	t.Run("empty input is valid", func(t *testing.T) {
		names, err := c.Validate(nil)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestCatalogSearch(t *testing.T) {
	c := NewCatalog([]string{"Go", "Python", "Jupyter", "VisualStudio"})

	t.Run("case-insensitive substring", func(t *testing.T) {
		assert.Equal(t, []string{"Python", "Jupyter"}, c.Search("PY"))
	})

	t.Run("empty term returns everything", func(t *testing.T) {
		assert.Equal(t, []string{"Go", "Python", "Jupyter", "VisualStudio"}, c.Search(""))
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, c.Search("rust"))
	})
}
