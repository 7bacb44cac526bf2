package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory(t *testing.T) {
	sections := GroupByCategory(newTestStorefront())

	require.Len(t, sections, 3)
	assert.Equal(t, "Drinks", sections[0].Title)
	assert.Equal(t, "Mains", sections[1].Title)
	assert.Equal(t, "All Products", sections[2].Title)
	assert.Equal(t, int64(3), sections[2].Products[0].ID)
}
