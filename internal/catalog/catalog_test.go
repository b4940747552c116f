package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"dashbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Len(t, c.Restaurants, 5)
	for _, r := range c.Restaurants {
		assert.NotEmpty(t, r.Name)
		assert.Len(t, r.Items, 3)
	}
	assert.NoError(t, c.validate())
}

func TestCatalog_Restaurant(t *testing.T) {
	c := Default()

	tests := []struct {
		name        string
		index       int
		expectedErr error
	}{
		{name: "first restaurant", index: 0},
		{name: "last restaurant", index: 4},
		{name: "negative index", index: -1, expectedErr: domain.ErrIndexOutOfRange},
		{name: "past the end", index: 5, expectedErr: domain.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := c.Restaurant(tt.index)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, r)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, c.Restaurants[tt.index].Name, r.Name)
			}
		})
	}
}

func TestCatalog_Item(t *testing.T) {
	c := Default()

	t.Run("valid indices", func(t *testing.T) {
		r, item, err := c.Item(0, 1)
		require.NoError(t, err)
		assert.Equal(t, "Pizza Express", r.Name)
		assert.Equal(t, "Pepperoni Pizza", item.Name)
	})

	t.Run("item out of range", func(t *testing.T) {
		_, _, err := c.Item(0, 3)
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	})

	t.Run("restaurant out of range", func(t *testing.T) {
		_, _, err := c.Item(7, 0)
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	})
}

func TestItem_Label(t *testing.T) {
	item := Item{Name: "Margherita Pizza", Price: "25.00"}
	assert.Equal(t, "Margherita Pizza - RM 25.00", item.Label())
}

func TestLoadFile(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid catalog", func(t *testing.T) {
		path := writeFile(t, `
restaurants:
  - name: Test Kitchen
    items:
      - name: Dumplings
        price: "12.50"
      - name: Fried Rice
        price: "9.00"
`)
		c, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, c.Restaurants, 1)
		assert.Equal(t, "Test Kitchen", c.Restaurants[0].Name)
		assert.Len(t, c.Restaurants[0].Items, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "restaurants: [not closed")
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("no restaurants", func(t *testing.T) {
		path := writeFile(t, "restaurants: []")
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("restaurant without items", func(t *testing.T) {
		path := writeFile(t, `
restaurants:
  - name: Empty Kitchen
    items: []
`)
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("bad price", func(t *testing.T) {
		path := writeFile(t, `
restaurants:
  - name: Test Kitchen
    items:
      - name: Dumplings
        price: "cheap"
`)
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
