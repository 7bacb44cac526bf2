package storefront

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepLink_StripsNonDigitsAndEncodesText(t *testing.T) {
	link := DeepLink("+234 801-234-5678", "*New Order* for A&B\n• 2x Rice — ₦2,000")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/2348012345678", u.Path)
	assert.Equal(t, "*New Order* for A&B\n• 2x Rice — ₦2,000", u.Query().Get("text"))
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a%20b", EncodeURIComponent("a b"))
	assert.Equal(t, "*bold*", EncodeURIComponent("*bold*"))
	assert.Equal(t, "(x)!'", EncodeURIComponent("(x)!'"))
	assert.Equal(t, "1%2B1%3D2%26", EncodeURIComponent("1+1=2&"))
	assert.Equal(t, "%E2%82%A6", EncodeURIComponent("₦"))
}
