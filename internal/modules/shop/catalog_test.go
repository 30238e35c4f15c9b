package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogItemsAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range Catalog {
		assert.False(t, seen[item.ID], "duplicate item id %s", item.ID)
		seen[item.ID] = true

		assert.NotEmpty(t, item.Name, item.ID)
		assert.Greater(t, item.Price, 0, item.ID)

		_, ok := slotField(item.Type)
		assert.True(t, ok, "item %s has unknown type %s", item.ID, item.Type)
	}
}

func TestItemByID(t *testing.T) {
	item, ok := ItemByID("hat_star")
	require.True(t, ok)
	assert.Equal(t, 75, item.Price)
	assert.Equal(t, "hat", item.Type)

	_, ok = ItemByID("hat_missing")
	assert.False(t, ok)
}
