package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItems_Set(t *testing.T) {
	var items cartItems

	require.NoError(t, items.Set("12=2"))
	require.NoError(t, items.Set(" 14 "))
	assert.Equal(t, cartItems{{productID: 12, quantity: 2}, {productID: 14, quantity: 1}}, items)
	assert.Equal(t, "12=2,14=1", items.String())

	for _, bad := range []string{"abc=1", "0=1", "12=0", "12=-3", "12=x"} {
		assert.Error(t, items.Set(bad), bad)
	}
	assert.Len(t, items, 2)
}
